// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirector

import "github.com/blazered/blazered/lib/tdf"

// localeCode is the packed four character language/region code ("enNZ")
// the official client reports.
const localeCode = 0x656e4e5a

// InstanceRequest is the client identity fingerprint sent when asking
// the redirector for a server instance. The values describe one fixed
// game client profile, extracted from an official copy; they never vary
// at runtime and there is no decode counterpart.
type InstanceRequest struct{}

// EncodeTDF writes the descriptor fields in tag order. FPID is a
// capability the protocol allows but this profile does not use, so it
// goes out as an unset union.
func (InstanceRequest) EncodeTDF(w *tdf.Writer) {
	w.TagString("BSDK", "3.15.6.0")
	w.TagString("BTIM", "Dec 21 2012 12:47:10")
	w.TagString("CLNT", "MassEffect3-pc")
	w.TagUint8("CLTP", 0)
	w.TagString("CSKU", "134845")
	w.TagString("CVER", "05427.124")
	w.TagString("DSDK", "8.14.7.1")
	w.TagString("ENV", "prod")
	w.TagUnionUnset("FPID")
	w.TagUint32("LOC", localeCode)
	w.TagString("NAME", "masseffect-3-pc")
	w.TagString("PLAT", "Windows")
	w.TagString("PROF", "standardSecure_v3")
}
