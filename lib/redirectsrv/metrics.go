// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirectsrv

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConnectionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blazered",
		Subsystem: "redirectsrv",
		Name:      "connections_accepted_total",
		Help:      "Total number of accepted client connections",
	})
	metricInstancesServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blazered",
		Subsystem: "redirectsrv",
		Name:      "instances_served_total",
		Help:      "Total number of instance details responses served",
	})
	metricProtocolErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blazered",
		Subsystem: "redirectsrv",
		Name:      "protocol_errors_total",
		Help:      "Total number of frames answered with an error",
	})
)
