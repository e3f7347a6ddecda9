// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package redirectsrv serves the redirector side of the exchange: every
// client asking for a server instance is answered with the one instance
// the operator configured. Instance selection policy is out of scope by
// design.
package redirectsrv

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/blazered/blazered/lib/fire"
	"github.com/blazered/blazered/lib/redirector"
	"github.com/blazered/blazered/lib/tdf"
)

// errCommandNotFound is the wire error code returned for frames we do
// not implement.
const errCommandNotFound = 0x4001

const networkTimeout = 2 * time.Minute

// Server answers GetServerInstance requests on the given listener. It
// implements suture.Service; run it under a supervisor or call Serve
// directly.
type Server struct {
	listener net.Listener
	details  redirector.InstanceDetails
}

func New(listener net.Listener, details redirector.InstanceDetails) *Server {
	return &Server{
		listener: listener,
		details:  details,
	}
}

func (s *Server) Serve(ctx context.Context) error {
	l.Infoln("Listening on", s.listener.Addr())

	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		metricConnectionsAccepted.Inc()
		l.Debugln("connection from", conn.RemoteAddr())
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	for {
		conn.SetReadDeadline(time.Now().Add(networkTimeout))
		h, _, err := fire.ReadFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.Debugln("read from", conn.RemoteAddr(), "failed:", err)
			}
			return
		}

		if h.Component == fire.ComponentRedirector && h.Command == fire.CommandGetServerInstance {
			var w tdf.Writer
			s.details.EncodeTDF(&w)
			reply := fire.Header{
				Component: h.Component,
				Command:   h.Command,
				Type:      fire.TypeResult,
				ID:        h.ID,
			}
			if err := fire.WriteFrame(conn, reply, w.Bytes()); err != nil {
				l.Debugln("write to", conn.RemoteAddr(), "failed:", err)
				return
			}
			metricInstancesServed.Inc()
			continue
		}

		metricProtocolErrors.Inc()
		l.Debugf("unhandled frame from %v: component 0x%04x command 0x%04x", conn.RemoteAddr(), h.Component, h.Command)
		reply := fire.Header{
			Component: h.Component,
			Command:   h.Command,
			Error:     errCommandNotFound,
			Type:      fire.TypeError,
			ID:        h.ID,
		}
		if err := fire.WriteFrame(conn, reply, nil); err != nil {
			return
		}
	}
}

func (s *Server) String() string {
	return "redirectsrv@" + s.listener.Addr().String()
}
