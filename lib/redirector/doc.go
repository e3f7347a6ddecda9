// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package redirector defines the messages exchanged with a Blaze
// redirector: the service a game client asks for the address of the
// server instance it should connect to next. The types here map between
// in-memory values and their tag-value wire form; transport and
// instance selection live elsewhere.
package redirector
