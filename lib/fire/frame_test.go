// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package fire

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestFrameRoundtrip(t *testing.T) {
	h := Header{
		Component: ComponentRedirector,
		Command:   CommandGetServerInstance,
		Type:      TypeResult,
		ID:        42,
	}
	payload := []byte("tagged bytes")

	var buf bytes.Buffer
	if err := WriteFrame(&buf, h, payload); err != nil {
		t.Fatal(err)
	}
	got, gotPayload, err := ReadFrame(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff, equal := messagediff.PrettyDiff(h, got); !equal {
		t.Errorf("header differs:\n%s", diff)
	}
	if !bytes.Equal(payload, gotPayload) {
		t.Errorf("payload %q, expected %q", gotPayload, payload)
	}
}

func TestFrameWireLayout(t *testing.T) {
	h := Header{
		Component: 0x0005,
		Command:   0x0001,
		Error:     0x4001,
		Type:      TypeError,
		ID:        0x0102,
	}
	var buf bytes.Buffer
	if err := WriteFrame(&buf, h, []byte{0xAA}); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x00, 0x01, // length
		0x00, 0x05, // component
		0x00, 0x01, // command
		0x40, 0x01, // error
		0x30, 0x00, // type
		0x01, 0x02, // id
		0xAA,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("frame bytes %x, expected %x", buf.Bytes(), want)
	}
}

func TestReadFrameTruncated(t *testing.T) {
	h := Header{Component: ComponentRedirector, Command: CommandGetServerInstance}
	var buf bytes.Buffer
	if err := WriteFrame(&buf, h, []byte("payload")); err != nil {
		t.Fatal(err)
	}
	short := buf.Bytes()[:buf.Len()-3]

	_, _, err := ReadFrame(bytes.NewReader(short))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}

func TestWriteFrameTooLarge(t *testing.T) {
	err := WriteFrame(io.Discard, Header{}, make([]byte, maxPayload+1))
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("expected ErrFrameTooLarge, got %v", err)
	}
}
