// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package tdf

// Writer appends tagged fields to an in-memory buffer. Every value is
// representable, so there is no error path; the zero value is ready to
// use.
type Writer struct {
	buf []byte
}

// Bytes returns the encoded stream. The slice aliases the writer's
// buffer and is valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeTag(tag Tag, typ Type) {
	p := tag.pack()
	w.buf = append(w.buf, p[0], p[1], p[2], byte(typ))
}

// WriteTag writes a bare field header. It is for values whose encoding
// lives with the value type itself, which follows up with raw writes.
func (w *Writer) WriteTag(tag Tag, typ Type) {
	w.writeTag(tag, typ)
}

func (w *Writer) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteVarInt appends a raw variable length integer: six value bits in
// the first byte, seven in each continuation byte, high bit set on all
// but the last.
func (w *Writer) WriteVarInt(v uint64) {
	if v < 0x40 {
		w.buf = append(w.buf, byte(v))
		return
	}
	w.buf = append(w.buf, byte(v&0x3F)|0x80)
	v >>= 6
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v&0x7F)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

// WriteUint32 appends a raw 32-bit value using the varint encoding.
func (w *Writer) WriteUint32(v uint32) {
	w.WriteVarInt(uint64(v))
}

func (w *Writer) TagUint8(tag Tag, v uint8) {
	w.writeTag(tag, TypeVarInt)
	w.WriteVarInt(uint64(v))
}

func (w *Writer) TagUint16(tag Tag, v uint16) {
	w.writeTag(tag, TypeVarInt)
	w.WriteVarInt(uint64(v))
}

func (w *Writer) TagUint32(tag Tag, v uint32) {
	w.writeTag(tag, TypeVarInt)
	w.WriteVarInt(uint64(v))
}

func (w *Writer) TagUint64(tag Tag, v uint64) {
	w.writeTag(tag, TypeVarInt)
	w.WriteVarInt(v)
}

func (w *Writer) TagBool(tag Tag, v bool) {
	w.writeTag(tag, TypeVarInt)
	if v {
		w.WriteVarInt(1)
	} else {
		w.WriteVarInt(0)
	}
}

// TagString writes a length prefixed string. The length includes the
// terminating NUL that follows the bytes.
func (w *Writer) TagString(tag Tag, s string) {
	w.writeTag(tag, TypeString)
	w.WriteVarInt(uint64(len(s)) + 1)
	w.buf = append(w.buf, s...)
	w.writeByte(0)
}

func (w *Writer) TagBlob(tag Tag, b []byte) {
	w.writeTag(tag, TypeBlob)
	w.WriteVarInt(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// TagGroup opens a group value. The caller writes the member fields and
// closes the group with GroupEnd.
func (w *Writer) TagGroup(tag Tag) {
	w.writeTag(tag, TypeGroup)
}

// GroupEnd terminates the innermost open group.
func (w *Writer) GroupEnd() {
	w.writeByte(groupEnd)
}

// TagUnion opens a union value with the given discriminant. The caller
// writes exactly one tagged field as the payload.
func (w *Writer) TagUnion(tag Tag, discriminant byte) {
	w.writeTag(tag, TypeUnion)
	w.writeByte(discriminant)
}

// TagUnionUnset writes a union in the unset state, which carries no
// payload.
func (w *Writer) TagUnionUnset(tag Tag) {
	w.TagUnion(tag, UnionUnset)
}
