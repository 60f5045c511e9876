// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// Append - add an identifier to the end of an owner's list
//
// returns the position of the identifier; if it is already listed the
// existing position is kept
func (ix *index) Append(trx storage.Transaction, owner *account.Account, identifier creature.Identifier) uint64 {
	dKey := ownerKey(owner, identifier)
	if position, found := trx.GetN(ix.pools.OwnerIndex, dKey); found {
		return position
	}

	ownerBytes := owner.Bytes()

	count, ok := trx.GetN(ix.pools.OwnerNextCount, ownerBytes)
	if !ok {
		count = 1
	}
	held, _ := trx.GetN(ix.pools.OwnerHeld, ownerBytes)

	trx.PutN(ix.pools.OwnerNextCount, ownerBytes, count+1)
	trx.PutN(ix.pools.OwnerHeld, ownerBytes, held+1)
	trx.Put(ix.pools.OwnerList, ownerKey(owner, countBytes(count)), identifier)
	trx.PutN(ix.pools.OwnerIndex, dKey, count)

	return count
}

// Remove - delete an identifier from an owner's list
//
// false if the identifier was not listed
func (ix *index) Remove(trx storage.Transaction, owner *account.Account, identifier creature.Identifier) bool {
	dKey := ownerKey(owner, identifier)
	position, found := trx.GetN(ix.pools.OwnerIndex, dKey)
	if !found {
		return false
	}

	ownerBytes := owner.Bytes()
	held, ok := trx.GetN(ix.pools.OwnerHeld, ownerBytes)
	if !ok || 0 == held {
		logger.Panicf("ownership: owner: %s  listed: %x  with zero held count", owner, []byte(identifier))
	}

	trx.PutN(ix.pools.OwnerHeld, ownerBytes, held-1)
	trx.Delete(ix.pools.OwnerList, ownerKey(owner, countBytes(position)))
	trx.Delete(ix.pools.OwnerIndex, dKey)

	return true
}

// Contains - true if the owner's list has the identifier
func (ix *index) Contains(trx storage.Transaction, owner *account.Account, identifier creature.Identifier) bool {
	return readerFor(trx).Has(ix.pools.OwnerIndex, ownerKey(owner, identifier))
}

// Count - number of identifiers the owner currently holds
func (ix *index) Count(trx storage.Transaction, owner *account.Account) uint64 {
	held, _ := readerFor(trx).GetN(ix.pools.OwnerHeld, owner.Bytes())
	return held
}
