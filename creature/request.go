// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/util"
)

// tags to keep the two signed messages distinct
const (
	registerTag = 0x01
	transferTag = 0x02
)

// PackRegisterRequest - the bytes the owner signs to register a creature
//
// owner must be a valid account
func PackRegisterRequest(identifier Identifier, owner *account.Account, price uint64) []byte {
	buffer := util.ToVarint64(registerTag)
	buffer = util.AppendBytes(buffer, identifier)
	buffer = util.AppendBytes(buffer, owner.Bytes())
	return util.AppendVarint64(buffer, price)
}

// PackTransferRequest - the bytes the current owner signs to transfer a creature
//
// both accounts must be valid
func PackTransferRequest(identifier Identifier, from *account.Account, to *account.Account) []byte {
	buffer := util.ToVarint64(transferTag)
	buffer = util.AppendBytes(buffer, identifier)
	buffer = util.AppendBytes(buffer, from.Bytes())
	return util.AppendBytes(buffer, to.Bytes())
}
