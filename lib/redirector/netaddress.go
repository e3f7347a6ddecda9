// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirector

import (
	"encoding/binary"
	"net/netip"

	"github.com/blazered/blazered/lib/tdf"
)

// NetAddress is an IPv4 address as the redirector protocol carries it:
// the four octets reinterpreted as one big-endian 32-bit integer. Any
// 32-bit value is a valid address, so decoding cannot fail.
type NetAddress [4]byte

// Loopback is the address used when nothing better is known.
var Loopback = NetAddress{127, 0, 0, 1}

// ParseNetAddress parses a dotted-quad IPv4 literal. Anything else,
// including IPv6 literals and dotted quads with leading zeros, is
// rejected.
func ParseNetAddress(s string) (NetAddress, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return NetAddress{}, false
	}
	return NetAddress(addr.As4()), true
}

// String renders the dotted-quad form. This is also the debug
// rendering; there is no separate programmer view.
func (a NetAddress) String() string {
	return netip.AddrFrom4([4]byte(a)).String()
}

func (a NetAddress) encodeTDF(w *tdf.Writer) {
	w.WriteUint32(binary.BigEndian.Uint32(a[:]))
}

func decodeNetAddress(r *tdf.Reader) (NetAddress, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return NetAddress{}, err
	}
	var a NetAddress
	binary.BigEndian.PutUint32(a[:], v)
	return a, nil
}
