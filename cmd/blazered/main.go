// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command blazered runs a redirector: it answers every client handshake
// with the address of the one game server instance it is configured to
// point at.
package main

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thejerf/suture/v4"

	"github.com/blazered/blazered/lib/redirector"
	"github.com/blazered/blazered/lib/redirectsrv"
	"github.com/blazered/blazered/lib/tlsutil"
)

type cli struct {
	Listen        string `help:"Redirector listen address" default:":42127" env:"BLAZERED_LISTEN"`
	Host          string `help:"Host name or IPv4 address clients are sent to" required:"" env:"BLAZERED_HOST"`
	Port          uint16 `help:"Port clients are sent to" default:"14219" env:"BLAZERED_PORT"`
	Secure        bool   `help:"Mark the instance as requiring a secure connection" env:"BLAZERED_SECURE"`
	Cert          string `help:"Certificate file, generated when missing" default:"cert.pem" env:"BLAZERED_CERT"`
	Key           string `help:"Key file, generated when missing" default:"key.pem" env:"BLAZERED_KEY"`
	MetricsListen string `help:"Prometheus metrics listen address" env:"BLAZERED_METRICS_LISTEN"`
}

func main() {
	var params cli
	kong.Parse(&params)

	log.SetOutput(os.Stdout)

	cert, err := tls.LoadX509KeyPair(params.Cert, params.Key)
	if err != nil {
		log.Println("Generating new certificate")
		cert, err = tlsutil.NewCertificate(params.Cert, params.Key, "blazered")
		if err != nil {
			log.Fatalln("Failed to generate certificate:", err)
		}
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS10,
	}
	listener, err := tls.Listen("tcp", params.Listen, tlsCfg)
	if err != nil {
		log.Fatalln("Failed to listen:", err)
	}

	if params.MetricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(params.MetricsListen, mux); err != nil {
				log.Println("Metrics listener failed:", err)
			}
		}()
	}

	details := redirector.InstanceDetails{
		Net: redirector.InstanceNet{
			Host: redirector.HostFrom(params.Host),
			Port: params.Port,
		},
		Secure: params.Secure,
	}

	spv := suture.NewSimple("main")
	spv.Add(redirectsrv.New(listener, details))
	if err := spv.Serve(context.Background()); err != nil {
		log.Fatalln("Exiting:", err)
	}
}
