// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirector

import (
	"github.com/blazered/blazered/lib/tdf"
)

const (
	tagAddr = tdf.Tag("ADDR")
	tagHost = tdf.Tag("HOST")
	tagIP   = tdf.Tag("IP")
	tagPort = tdf.Tag("PORT")
	tagSecu = tdf.Tag("SECU")
	tagValu = tdf.Tag("VALU")
	tagXDNS = tdf.Tag("XDNS")
)

// InstanceHost is either a symbolic host name or an IPv4 address,
// never both. Which one is decided once, at construction, and not
// re-derived later.
type InstanceHost struct {
	name   string
	addr   NetAddress
	isAddr bool
}

// HostFrom builds an InstanceHost from operator-provided text. A value
// that parses as an IPv4 literal becomes the address variant; anything
// else is kept as a host name. A configured host name that merely looks
// like an IPv4 literal is therefore always treated as an address; this
// precedence is deliberate.
func HostFrom(s string) InstanceHost {
	if a, ok := ParseNetAddress(s); ok {
		return InstanceHost{addr: a, isAddr: true}
	}
	return InstanceHost{name: s}
}

// AddressHost builds the address variant directly.
func AddressHost(a NetAddress) InstanceHost {
	return InstanceHost{addr: a, isAddr: true}
}

// IsAddress reports whether the address variant is held.
func (h InstanceHost) IsAddress() bool {
	return h.isAddr
}

// Address returns the held address and whether the address variant is
// in use.
func (h InstanceHost) Address() (NetAddress, bool) {
	return h.addr, h.isAddr
}

// String returns the connectable text form: the original host name, or
// the dotted quad for the address variant.
func (h InstanceHost) String() string {
	if h.isAddr {
		return h.addr.String()
	}
	return h.name
}

// The two variants use mutually exclusive tags; exactly one of them is
// ever written.
func (h InstanceHost) encodeTDF(w *tdf.Writer) {
	if h.isAddr {
		w.WriteTag(tagIP, tdf.TypeVarInt)
		h.addr.encodeTDF(w)
	} else {
		w.TagString(tagHost, h.name)
	}
}

func decodeInstanceHost(r *tdf.Reader) (InstanceHost, error) {
	// Presence of HOST alone decides the branch; only when it is
	// absent is IP required.
	name, ok, err := r.TryTagString(tagHost)
	if err != nil {
		return InstanceHost{}, err
	}
	if ok {
		return InstanceHost{name: name}, nil
	}
	if err := r.Tag(tagIP, tdf.TypeVarInt); err != nil {
		return InstanceHost{}, err
	}
	addr, err := decodeNetAddress(r)
	if err != nil {
		return InstanceHost{}, err
	}
	return InstanceHost{addr: addr, isAddr: true}, nil
}

// InstanceNet is the network location of a game server instance. On
// the wire it is a group: the host field, the port, then the group
// terminator.
type InstanceNet struct {
	Host InstanceHost
	Port uint16
}

func (n InstanceNet) encodeTDF(w *tdf.Writer) {
	n.Host.encodeTDF(w)
	w.TagUint16(tagPort, n.Port)
	w.GroupEnd()
}

// decodeInstanceNet expects the cursor on the group's first member.
// The terminator byte is consumed unconditionally after the port:
// leaving it in the stream would desynchronize every field that
// follows the group.
func decodeInstanceNet(r *tdf.Reader) (InstanceNet, error) {
	host, err := decodeInstanceHost(r)
	if err != nil {
		return InstanceNet{}, err
	}
	port, err := r.TagUint16(tagPort)
	if err != nil {
		return InstanceNet{}, err
	}
	if _, err := r.ReadByte(); err != nil {
		return InstanceNet{}, err
	}
	return InstanceNet{Host: host, Port: port}, nil
}

// InstanceDetails is the redirector's answer: where to connect and
// whether the connection must be secure.
type InstanceDetails struct {
	Net    InstanceNet
	Secure bool
}

// EncodeTDF writes the payload. The address union's discriminant is
// always the server code, and XDNS is a constant false kept only for
// wire compatibility; it is never read back on decode.
func (d InstanceDetails) EncodeTDF(w *tdf.Writer) {
	w.TagUnion(tagAddr, byte(AddressTypeServer))
	w.TagGroup(tagValu)
	d.Net.encodeTDF(w)

	w.TagBool(tagSecu, d.Secure)
	w.TagBool(tagXDNS, false)
}

// DecodeInstanceDetails parses a redirector response payload. An unset ADDR union
// is the one domain error here: without an address the payload is
// meaningless, so it surfaces as a missing-tag failure rather than a
// defaulted value.
func DecodeInstanceDetails(r *tdf.Reader) (InstanceDetails, error) {
	disc, err := r.TagUnion(tagAddr)
	if err != nil {
		return InstanceDetails{}, err
	}
	if disc == tdf.UnionUnset {
		return InstanceDetails{}, &tdf.MissingTagError{Tag: tagAddr, Type: tdf.TypeUnion}
	}
	if err := r.TagGroup(tagValu); err != nil {
		return InstanceDetails{}, err
	}
	net, err := decodeInstanceNet(r)
	if err != nil {
		return InstanceDetails{}, err
	}
	secure, err := r.TagBool(tagSecu)
	if err != nil {
		return InstanceDetails{}, err
	}
	return InstanceDetails{Net: net, Secure: secure}, nil
}
