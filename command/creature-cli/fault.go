// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/creatured/fault"
)

// common errors - keep in alphabetic order
const (
	ErrIdentityFileExists  = fault.ExistsError("identity file already exists")
	ErrIdentityMismatch    = fault.InvalidError("identity account does not match private key")
	ErrInvalidCount        = fault.InvalidError("invalid count")
	ErrInvalidPrivateKey   = fault.InvalidError("invalid private key")
	ErrInvalidSalt         = fault.InvalidError("invalid salt")
	ErrMissingIdentifier   = fault.InvalidError("missing identifier")
	ErrMissingIdentityFile = fault.NotFoundError("missing identity file")
	ErrMissingPassword     = fault.InvalidError("missing password")
	ErrMissingReceiver     = fault.InvalidError("missing receiver")
	ErrWrongPassword       = fault.InvalidError("wrong password")
)
