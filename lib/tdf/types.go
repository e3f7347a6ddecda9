// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package tdf

// Type is the wire type byte that follows every tag.
type Type uint8

const (
	TypeVarInt     Type = 0x0
	TypeString     Type = 0x1
	TypeBlob       Type = 0x2
	TypeGroup      Type = 0x3
	TypeList       Type = 0x4
	TypeMap        Type = 0x5
	TypeUnion      Type = 0x6
	TypeVarIntList Type = 0x7
	TypePair       Type = 0x8
	TypeTriple     Type = 0x9
	TypeFloat      Type = 0xA
)

// UnionUnset is the union discriminant meaning "no value follows".
const UnionUnset byte = 0x7F

// groupEnd terminates a group value. It can never be confused with a
// field, since no tag packs to a zero first byte.
const groupEnd byte = 0x00

func (t Type) String() string {
	switch t {
	case TypeVarInt:
		return "varint"
	case TypeString:
		return "string"
	case TypeBlob:
		return "blob"
	case TypeGroup:
		return "group"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	case TypeUnion:
		return "union"
	case TypeVarIntList:
		return "varintlist"
	case TypePair:
		return "pair"
	case TypeTriple:
		return "triple"
	case TypeFloat:
		return "float"
	default:
		return "unknown"
	}
}
