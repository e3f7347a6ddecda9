// Copyright (C) 2025 The Blazered Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package redirector

import "fmt"

// NetworkAddressType is the one byte discriminant identifying which
// address shape a union carries. Codes outside the named set pass
// through verbatim rather than failing, so a newer peer can introduce
// shapes we do not know about yet.
type NetworkAddressType uint8

const (
	AddressTypeServer   NetworkAddressType = 0x0
	AddressTypeClient   NetworkAddressType = 0x1
	AddressTypePair     NetworkAddressType = 0x2
	AddressTypeIP       NetworkAddressType = 0x3
	AddressTypeHostname NetworkAddressType = 0x4
)

func (t NetworkAddressType) String() string {
	switch t {
	case AddressTypeServer:
		return "server"
	case AddressTypeClient:
		return "client"
	case AddressTypePair:
		return "pair"
	case AddressTypeIP:
		return "ipAddress"
	case AddressTypeHostname:
		return "hostnameAddress"
	default:
		return fmt.Sprintf("unknown (0x%x)", uint8(t))
	}
}
