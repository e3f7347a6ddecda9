// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirector

import (
	"testing"
	"testing/quick"

	"github.com/blazered/blazered/lib/tdf"
)

func TestParseNetAddress(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want NetAddress
	}{
		{"10.0.0.5", true, NetAddress{10, 0, 0, 5}},
		{"127.0.0.1", true, NetAddress{127, 0, 0, 1}},
		{"255.255.255.255", true, NetAddress{255, 255, 255, 255}},
		{"0.0.0.0", true, NetAddress{0, 0, 0, 0}},
		{"relay.example.net", false, NetAddress{}},
		{"256.0.0.1", false, NetAddress{}},
		{"10.0.0", false, NetAddress{}},
		{"010.0.0.5", false, NetAddress{}}, // leading zeros are not a valid literal
		{"::1", false, NetAddress{}},
		{"", false, NetAddress{}},
	}
	for _, tc := range cases {
		got, ok := ParseNetAddress(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseNetAddress(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNetAddressString(t *testing.T) {
	if s := (NetAddress{10, 0, 0, 5}).String(); s != "10.0.0.5" {
		t.Errorf("got %q", s)
	}
	if s := Loopback.String(); s != "127.0.0.1" {
		t.Errorf("got %q", s)
	}
}

func TestNetAddressWireValue(t *testing.T) {
	// The octets go out as one big-endian 32-bit integer.
	var w tdf.Writer
	NetAddress{10, 0, 0, 5}.encodeTDF(&w)
	v, err := tdf.NewReader(w.Bytes()).ReadUint32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x0A000005 {
		t.Errorf("wire value 0x%08x, expected 0x0A000005", v)
	}
}

func TestNetAddressRoundtrip(t *testing.T) {
	fn := func(a, b, c, d byte) bool {
		addr := NetAddress{a, b, c, d}
		var w tdf.Writer
		addr.encodeTDF(&w)
		got, err := decodeNetAddress(tdf.NewReader(w.Bytes()))
		return err == nil && got == addr
	}
	if err := quick.Check(fn, nil); err != nil {
		t.Error(err)
	}
}
