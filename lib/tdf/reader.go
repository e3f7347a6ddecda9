// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package tdf

import (
	"errors"
	"fmt"
	"io"
)

var errVarIntTooLong = errors.New("varint exceeds 64 bits")

// Reader decodes tagged fields from a byte slice. Lookups scan forward
// from the cursor, skipping fields they are not asked for; the cursor
// never moves backwards except when a Try probe misses.
type Reader struct {
	buf []byte
	off int
}

func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// ReadByte consumes a single raw byte, such as a group terminator.
func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadVarInt consumes a raw variable length integer.
func (r *Reader) ReadVarInt() (uint64, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	v := uint64(b & 0x3F)
	if b&0x80 == 0 {
		return v, nil
	}
	for shift := uint(6); ; shift += 7 {
		if shift > 63 {
			return 0, errVarIntTooLong
		}
		if b, err = r.ReadByte(); err != nil {
			return 0, err
		}
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// ReadUint32 consumes a raw varint and truncates it to 32 bits.
func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadVarInt()
	return uint32(v), err
}

func (r *Reader) readString() (string, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return "", err
	}
	if n > uint64(len(r.buf)-r.off) {
		return "", io.ErrUnexpectedEOF
	}
	s := r.buf[r.off : r.off+int(n)]
	r.off += int(n)
	if len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return string(s), nil
}

func (r *Reader) readTagHeader() (Tag, Type, error) {
	if len(r.buf)-r.off < 4 {
		return "", 0, io.ErrUnexpectedEOF
	}
	tag := unpackTag([3]byte{r.buf[r.off], r.buf[r.off+1], r.buf[r.off+2]})
	typ := Type(r.buf[r.off+3])
	r.off += 4
	return tag, typ, nil
}

// find scans forward for the given tag, skipping other fields. On
// return the cursor sits on the field's value. Hitting the end of the
// scope, either a group terminator or the end of the buffer, yields a
// MissingTagError.
func (r *Reader) find(tag Tag, want Type) error {
	for {
		if r.off >= len(r.buf) || r.buf[r.off] == groupEnd {
			return &MissingTagError{Tag: tag, Type: want}
		}
		got, typ, err := r.readTagHeader()
		if err != nil {
			return err
		}
		if got == tag {
			if typ != want {
				return &UnexpectedTypeError{Tag: tag, Want: want, Got: typ}
			}
			return nil
		}
		if err := r.skipValue(typ); err != nil {
			return err
		}
	}
}

// Tag positions the cursor on the value of the given field, for
// values whose decoding lives with the value type itself.
func (r *Reader) Tag(tag Tag, want Type) error {
	return r.find(tag, want)
}

func (r *Reader) TagVarInt(tag Tag) (uint64, error) {
	if err := r.find(tag, TypeVarInt); err != nil {
		return 0, err
	}
	return r.ReadVarInt()
}

func (r *Reader) TagUint16(tag Tag) (uint16, error) {
	v, err := r.TagVarInt(tag)
	return uint16(v), err
}

func (r *Reader) TagUint32(tag Tag) (uint32, error) {
	v, err := r.TagVarInt(tag)
	return uint32(v), err
}

func (r *Reader) TagBool(tag Tag) (bool, error) {
	v, err := r.TagVarInt(tag)
	return v != 0, err
}

func (r *Reader) TagString(tag Tag) (string, error) {
	if err := r.find(tag, TypeString); err != nil {
		return "", err
	}
	return r.readString()
}

// TryTagString probes for an optional string field. A missing tag is
// not an error; the cursor is restored so the caller can probe for an
// alternative field instead.
func (r *Reader) TryTagString(tag Tag) (string, bool, error) {
	save := r.off
	s, err := r.TagString(tag)
	if err != nil {
		var miss *MissingTagError
		if errors.As(err, &miss) {
			r.off = save
			return "", false, nil
		}
		return "", false, err
	}
	return s, true, nil
}

// TagUnion locates a union field and returns its discriminant. For any
// discriminant other than UnionUnset the cursor sits on the payload's
// tag header afterwards.
func (r *Reader) TagUnion(tag Tag) (byte, error) {
	if err := r.find(tag, TypeUnion); err != nil {
		return 0, err
	}
	return r.ReadByte()
}

// TagGroup locates a group field, leaving the cursor on its first
// member. The caller is responsible for consuming the terminator byte
// after the last member it reads.
func (r *Reader) TagGroup(tag Tag) error {
	if err := r.find(tag, TypeGroup); err != nil {
		return err
	}
	// Some peers prefix group values with a lone 0x02 byte; tolerate
	// it. No tag header can start with 0x02.
	if r.off < len(r.buf) && r.buf[r.off] == 0x02 {
		r.off++
	}
	return nil
}

// skip takes the length unsigned so that a huge wire value cannot wrap
// to a negative offset; it is compared against the remaining bytes
// before any conversion.
func (r *Reader) skip(n uint64) error {
	if n > uint64(len(r.buf)-r.off) {
		return io.ErrUnexpectedEOF
	}
	r.off += int(n)
	return nil
}

func (r *Reader) skipVarInt() error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b&0x80 == 0 {
			return nil
		}
	}
}

// skipValue steps over one value of the given type, recursing into
// aggregates, so that scans can pass unrelated fields of any shape.
func (r *Reader) skipValue(typ Type) error {
	switch typ {
	case TypeVarInt:
		return r.skipVarInt()
	case TypeString, TypeBlob:
		n, err := r.ReadVarInt()
		if err != nil {
			return err
		}
		return r.skip(n)
	case TypeGroup:
		return r.skipGroup()
	case TypeList:
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		n, err := r.ReadVarInt()
		if err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if err := r.skipValue(Type(b)); err != nil {
				return err
			}
		}
		return nil
	case TypeMap:
		kt, err := r.ReadByte()
		if err != nil {
			return err
		}
		vt, err := r.ReadByte()
		if err != nil {
			return err
		}
		n, err := r.ReadVarInt()
		if err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if err := r.skipValue(Type(kt)); err != nil {
				return err
			}
			if err := r.skipValue(Type(vt)); err != nil {
				return err
			}
		}
		return nil
	case TypeUnion:
		d, err := r.ReadByte()
		if err != nil {
			return err
		}
		if d == UnionUnset {
			return nil
		}
		_, t, err := r.readTagHeader()
		if err != nil {
			return err
		}
		return r.skipValue(t)
	case TypeVarIntList:
		n, err := r.ReadVarInt()
		if err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if err := r.skipVarInt(); err != nil {
				return err
			}
		}
		return nil
	case TypePair:
		if err := r.skipVarInt(); err != nil {
			return err
		}
		return r.skipVarInt()
	case TypeTriple:
		for i := 0; i < 3; i++ {
			if err := r.skipVarInt(); err != nil {
				return err
			}
		}
		return nil
	case TypeFloat:
		return r.skip(4)
	default:
		return fmt.Errorf("cannot skip value of unknown type 0x%x", uint8(typ))
	}
}

func (r *Reader) skipGroup() error {
	// Some peers prefix group values with a lone 0x02 byte; tolerate it.
	if r.off < len(r.buf) && r.buf[r.off] == 0x02 {
		r.off++
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b == groupEnd {
			return nil
		}
		r.off--
		_, typ, err := r.readTagHeader()
		if err != nil {
			return err
		}
		if err := r.skipValue(typ); err != nil {
			return err
		}
	}
}
