// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tdf implements the tag-value wire format used by the Blaze
// family of game server protocols. Every field on the wire is a packed
// four character tag, a type byte and a typed value. Groups of fields
// are terminated by an explicit end marker and union values carry a one
// byte discriminant in front of their payload.
package tdf
