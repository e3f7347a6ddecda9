// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command brcli performs a single redirector lookup and prints the
// returned instance address.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/blazered/blazered/lib/retriever"
)

type cli struct {
	Address string        `arg:"" help:"Redirector address (host:port)"`
	Timeout time.Duration `help:"Exchange timeout" default:"10s"`
}

func main() {
	var params cli
	kong.Parse(&params)

	details, err := retriever.Fetch(context.Background(), params.Address, params.Timeout)
	if err != nil {
		log.Fatalln("Lookup failed:", err)
	}

	addr := net.JoinHostPort(details.Net.Host.String(), strconv.Itoa(int(details.Net.Port)))
	fmt.Println("instance:", addr)
	fmt.Println("secure:", details.Secure)
}
