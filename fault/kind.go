// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Kind - registry failure code
type Kind uint8

// registry failures - zero is never a valid kind
const (
	InvalidPrice Kind = iota + 1
	NotOwned
	NoSuchRecord
	StorageOverflow
	InvalidAccount
	IdentifierExists
	OwnerMismatch
	kindLimit // one greater than last item
)

// Error - so a kind can be returned directly as an error
func (k Kind) Error() string {
	return Describe(k)
}

// Valid - true if the kind is one of the enumerated values
func (k Kind) Valid() bool {
	return k > 0 && k < kindLimit
}

// Describe - human readable text for a kind
func Describe(k Kind) string {
	switch k {
	case InvalidPrice:
		return "invalid price"
	case NotOwned:
		return "creature not owned"
	case NoSuchRecord:
		return "no such creature"
	case StorageOverflow:
		return "storage overflow"
	case InvalidAccount:
		return "invalid account"
	case IdentifierExists:
		return "identifier already registered"
	case OwnerMismatch:
		return "owner does not match ownership index"
	default:
		return "invalid error"
	}
}

// KindOf - extract the kind from an error
//
// second value is false if the error is not a registry failure
func KindOf(err error) (Kind, bool) {
	k, ok := err.(Kind)
	if !ok || !k.Valid() {
		return 0, false
	}
	return k, true
}
