// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package retriever

import (
	"github.com/blazered/blazered/lib/logger"
)

var l = logger.DefaultLogger.NewFacility("retriever", "Redirector lookup client")
