// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package tdf

// Tag is a field label of up to four characters from [A-Z0-9 ]. Shorter
// tags are padded with trailing zero characters on the wire.
type Tag string

// pack compresses the tag to its three byte wire form. Each character
// is reduced to six bits by subtracting 0x20; padding characters encode
// as zero.
func (t Tag) pack() [3]byte {
	var v uint32
	for i := 0; i < 4; i++ {
		var c byte
		if i < len(t) {
			c = t[i]
		}
		v <<= 6
		if c != 0 {
			v |= uint32(c-0x20) & 0x3F
		}
	}
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// unpackTag expands the three byte wire form back to its label,
// dropping trailing padding.
func unpackTag(b [3]byte) Tag {
	v := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	var out [4]byte
	n := 0
	for i := 0; i < 4; i++ {
		c := byte(v>>uint(18-6*i)) & 0x3F
		if c == 0 {
			break
		}
		out[i] = c + 0x20
		n++
	}
	return Tag(out[:n])
}
