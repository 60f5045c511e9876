// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"encoding/hex"
)

// Identifier - caller chosen key for a creature
type Identifier []byte

// String - hex form for the fmt package (for %s)
func (identifier Identifier) String() string {
	return hex.EncodeToString(identifier)
}

// GoString - for the fmt package (for %#v)
func (identifier Identifier) GoString() string {
	return "<identifier:" + hex.EncodeToString(identifier) + ">"
}

// MarshalText - convert identifier to hex text
func (identifier Identifier) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(identifier)))
	hex.Encode(b, identifier)
	return b, nil
}

// UnmarshalText - convert hex text to an identifier
func (identifier *Identifier) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*identifier = buffer[:n]
	return nil
}
