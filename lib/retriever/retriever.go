// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package retriever asks a redirector which game server instance to
// connect to, the same exchange the official client performs during its
// handshake.
package retriever

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/blazered/blazered/lib/fire"
	"github.com/blazered/blazered/lib/redirector"
	"github.com/blazered/blazered/lib/tdf"
)

type serverError struct {
	code uint16
}

func (e *serverError) Error() string {
	return fmt.Sprintf("redirector returned error code 0x%04x", e.code)
}

// Fetch dials the redirector at addr (host:port), sends the instance
// request and returns the instance details from the response. The
// whole exchange is bounded by timeout and by ctx.
func Fetch(ctx context.Context, addr string, timeout time.Duration) (redirector.InstanceDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var dialer net.Dialer
	rconn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return redirector.InstanceDetails{}, err
	}

	conn := tls.Client(rconn, tlsConfig())
	conn.SetDeadline(time.Now().Add(timeout))
	defer conn.Close()

	var w tdf.Writer
	redirector.InstanceRequest{}.EncodeTDF(&w)
	header := fire.Header{
		Component: fire.ComponentRedirector,
		Command:   fire.CommandGetServerInstance,
		Type:      fire.TypeMessage,
		ID:        1,
	}
	if err := fire.WriteFrame(conn, header, w.Bytes()); err != nil {
		return redirector.InstanceDetails{}, err
	}

	for {
		h, payload, err := fire.ReadFrame(conn)
		if err != nil {
			return redirector.InstanceDetails{}, err
		}
		if h.Component != fire.ComponentRedirector || h.Command != fire.CommandGetServerInstance || h.ID != header.ID {
			l.Debugf("ignoring frame for component 0x%04x command 0x%04x id %d", h.Component, h.Command, h.ID)
			continue
		}
		switch h.Type {
		case fire.TypeResult:
			if h.Error != 0 {
				return redirector.InstanceDetails{}, &serverError{h.Error}
			}
			details, err := redirector.DecodeInstanceDetails(tdf.NewReader(payload))
			if err != nil {
				return redirector.InstanceDetails{}, err
			}
			l.Debugln("received instance", details.Net.Host.String(), "via", conn.LocalAddr())
			return details, nil
		case fire.TypeError:
			return redirector.InstanceDetails{}, &serverError{h.Error}
		case fire.TypeNotify:
			continue
		default:
			return redirector.InstanceDetails{}, fmt.Errorf("protocol error: unexpected frame type 0x%04x", h.Type)
		}
	}
}

// The official redirector speaks legacy TLS with a certificate no
// system trust store accepts, so verification is off and the floor is
// lowered.
func tlsConfig() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS10,
	}
}
