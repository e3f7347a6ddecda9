// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package tdf

import "fmt"

// MissingTagError is returned when a required tag is not present in the
// current scope, or when a required union is in the unset state.
type MissingTagError struct {
	Tag  Tag
	Type Type
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf("missing tag %q (expected %s)", string(e.Tag), e.Type)
}

// UnexpectedTypeError is returned when a tag is present but carries a
// different wire type than the caller asked for.
type UnexpectedTypeError struct {
	Tag  Tag
	Want Type
	Got  Type
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("tag %q has type %s, expected %s", string(e.Tag), e.Got, e.Want)
}
