// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fire implements the frame layer that carries tag-value
// payloads on a redirector connection: a fixed 12 byte big-endian
// header followed by the payload bytes.
package fire

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	// HeaderLen is the wire size of a frame header.
	HeaderLen = 12

	// maxPayload is the largest payload a frame can describe. The
	// length field is 16 bits; larger messages do not occur in the
	// redirector exchange.
	maxPayload = 0xFFFF
)

// Component and command identifiers for the exchanges this package is
// used for.
const (
	ComponentRedirector      = 0x0005
	CommandGetServerInstance = 0x0001
)

// Message type codes, carried in the header's type field.
const (
	TypeMessage = 0x0000
	TypeResult  = 0x1000
	TypeNotify  = 0x2000
	TypeError   = 0x3000
)

var ErrFrameTooLarge = errors.New("frame payload exceeds 16 bit length")

// Header describes one frame. The payload length is not part of the
// struct; it is derived from the payload itself when writing.
type Header struct {
	Component uint16
	Command   uint16
	Error     uint16
	Type      uint16
	ID        uint16
}

// WriteFrame writes the header and payload as a single frame.
func WriteFrame(w io.Writer, h Header, payload []byte) error {
	if len(payload) > maxPayload {
		return ErrFrameTooLarge
	}
	buf := make([]byte, HeaderLen+len(payload))
	binary.BigEndian.PutUint16(buf[0:], uint16(len(payload)))
	binary.BigEndian.PutUint16(buf[2:], h.Component)
	binary.BigEndian.PutUint16(buf[4:], h.Command)
	binary.BigEndian.PutUint16(buf[6:], h.Error)
	binary.BigEndian.PutUint16(buf[8:], h.Type)
	binary.BigEndian.PutUint16(buf[10:], h.ID)
	_, err := w.Write(buf)
	return err
}

// ReadFrame reads one frame, blocking until the full payload has
// arrived.
func ReadFrame(r io.Reader) (Header, []byte, error) {
	var hdr [HeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Header{}, nil, err
	}
	h := Header{
		Component: binary.BigEndian.Uint16(hdr[2:]),
		Command:   binary.BigEndian.Uint16(hdr[4:]),
		Error:     binary.BigEndian.Uint16(hdr[6:]),
		Type:      binary.BigEndian.Uint16(hdr[8:]),
		ID:        binary.BigEndian.Uint16(hdr[10:]),
	}
	length := binary.BigEndian.Uint16(hdr[0:])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Header{}, nil, err
	}
	return h, payload, nil
}
