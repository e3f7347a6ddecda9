// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirector

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/blazered/blazered/lib/tdf"
)

func TestHostFromPolicy(t *testing.T) {
	cases := []struct {
		in     string
		isAddr bool
		str    string
	}{
		{"10.0.0.5", true, "10.0.0.5"},
		{"127.0.0.1", true, "127.0.0.1"},
		{"relay.example.net", false, "relay.example.net"},
		{"gosredirector.ea.com", false, "gosredirector.ea.com"},
		// Not valid IPv4 literals, so they stay symbolic even
		// though they look numeric.
		{"256.0.0.1", false, "256.0.0.1"},
		{"010.0.0.5", false, "010.0.0.5"},
		{"10.0.0.5:80", false, "10.0.0.5:80"},
		{"", false, ""},
	}
	for _, tc := range cases {
		h := HostFrom(tc.in)
		if h.IsAddress() != tc.isAddr {
			t.Errorf("HostFrom(%q).IsAddress() = %v, expected %v", tc.in, h.IsAddress(), tc.isAddr)
		}
		if h.String() != tc.str {
			t.Errorf("HostFrom(%q).String() = %q, expected %q", tc.in, h.String(), tc.str)
		}
	}
}

func TestInstanceNetRoundtrip(t *testing.T) {
	cases := []InstanceNet{
		{Host: HostFrom("10.0.0.5"), Port: 42127},
		{Host: HostFrom("relay.example.net"), Port: 80},
		{Host: AddressHost(Loopback), Port: 0},
		{Host: HostFrom("host-with-port-65535"), Port: 65535},
	}
	for _, n := range cases {
		var w tdf.Writer
		n.encodeTDF(&w)
		got, err := decodeInstanceNet(tdf.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("decoding %v: %v", n, err)
		}
		if got != n {
			t.Errorf("round-trip changed %v to %v", n, got)
		}
	}
}

func TestInstanceNetRoundtripQuick(t *testing.T) {
	fn := func(a, b, c, d byte, port uint16) bool {
		n := InstanceNet{Host: AddressHost(NetAddress{a, b, c, d}), Port: port}
		var w tdf.Writer
		n.encodeTDF(&w)
		got, err := decodeInstanceNet(tdf.NewReader(w.Bytes()))
		return err == nil && got == n
	}
	if err := quick.Check(fn, nil); err != nil {
		t.Error(err)
	}
}

func TestInstanceDetailsRoundtrip(t *testing.T) {
	for _, secure := range []bool{true, false} {
		d := InstanceDetails{
			Net:    InstanceNet{Host: HostFrom("10.0.0.5"), Port: 42127},
			Secure: secure,
		}
		var w tdf.Writer
		d.EncodeTDF(&w)
		got, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Errorf("round-trip changed %v to %v", d, got)
		}
	}
}

func TestInstanceDetailsAddressScenario(t *testing.T) {
	d := InstanceDetails{
		Net:    InstanceNet{Host: HostFrom("10.0.0.5"), Port: 42127},
		Secure: true,
	}
	var w tdf.Writer
	d.EncodeTDF(&w)
	got, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Net.Host.IsAddress() {
		t.Error("expected the address variant")
	}
	if addr, _ := got.Net.Host.Address(); addr != (NetAddress{10, 0, 0, 5}) {
		t.Errorf("address %v", addr)
	}
	if got.Net.Port != 42127 || !got.Secure {
		t.Errorf("port %d secure %v", got.Net.Port, got.Secure)
	}
}

func TestInstanceDetailsHostnameScenario(t *testing.T) {
	d := InstanceDetails{
		Net:    InstanceNet{Host: HostFrom("relay.example.net"), Port: 80},
		Secure: false,
	}
	var w tdf.Writer
	d.EncodeTDF(&w)
	got, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Net.Host.IsAddress() {
		t.Error("expected the host name variant")
	}
	if got.Net.Host.String() != "relay.example.net" {
		t.Errorf("host %q", got.Net.Host.String())
	}
	if got.Net.Port != 80 || got.Secure {
		t.Errorf("port %d secure %v", got.Net.Port, got.Secure)
	}
}

func TestInstanceDetailsUnionDiscriminant(t *testing.T) {
	var w tdf.Writer
	InstanceDetails{
		Net: InstanceNet{Host: AddressHost(Loopback), Port: 1},
	}.EncodeTDF(&w)

	disc, err := tdf.NewReader(w.Bytes()).TagUnion("ADDR")
	if err != nil {
		t.Fatal(err)
	}
	if NetworkAddressType(disc) != AddressTypeServer {
		t.Errorf("discriminant %v, expected server", NetworkAddressType(disc))
	}
}

func TestInstanceDetailsAddrUnset(t *testing.T) {
	var w tdf.Writer
	w.TagUnionUnset("ADDR")
	w.TagBool("SECU", true)

	_, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
	var miss *tdf.MissingTagError
	if !errors.As(err, &miss) {
		t.Fatalf("expected MissingTagError, got %v", err)
	}
	if miss.Tag != "ADDR" || miss.Type != tdf.TypeUnion {
		t.Errorf("error carries %q/%s, expected ADDR/union", miss.Tag, miss.Type)
	}
}

func TestInstanceDetailsAddrAbsent(t *testing.T) {
	var w tdf.Writer
	w.TagBool("SECU", true)

	_, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
	var miss *tdf.MissingTagError
	if !errors.As(err, &miss) {
		t.Fatalf("expected MissingTagError, got %v", err)
	}
	if miss.Tag != "ADDR" {
		t.Errorf("error names %q, expected ADDR", miss.Tag)
	}
}

// XDNS goes out on every encode but is never read back: a true value
// from a peer is not observable after decode, and re-encoding always
// writes false again.
func TestInstanceDetailsXDNSWriteOnly(t *testing.T) {
	var w tdf.Writer
	w.TagUnion("ADDR", byte(AddressTypeServer))
	w.TagGroup("VALU")
	w.TagString("HOST", "relay.example.net")
	w.TagUint16("PORT", 80)
	w.GroupEnd()
	w.TagBool("SECU", true)
	w.TagBool("XDNS", true)

	got, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	var re tdf.Writer
	got.EncodeTDF(&re)
	xdns, err := tdf.NewReader(re.Bytes()).TagBool("XDNS")
	if err != nil {
		t.Fatal(err)
	}
	if xdns {
		t.Error("XDNS must encode as false regardless of what was decoded")
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	var w tdf.Writer
	w.TagUnion("ADDR", byte(AddressTypeServer))
	w.TagGroup("VALU")
	w.TagString("HOST", "relay.example.net")
	w.TagUint16("PORT", 80)
	w.GroupEnd()
	w.TagString("QOSS", "someday") // a field this version does not know
	w.TagBool("SECU", true)
	w.TagBool("XDNS", false)

	got, err := DecodeInstanceDetails(tdf.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Secure || got.Net.Port != 80 {
		t.Errorf("decoded %v", got)
	}
}
