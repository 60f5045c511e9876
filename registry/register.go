// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

// Register - create a record owned by the caller
//
// an existing identifier is overwritten unless duplicates are rejected;
// the previous owner's index entry is left in place
//
// a caller that already lists the identifier keeps its single entry,
// no second copy is appended
func (r *registry) Register(identifier creature.Identifier, caller *account.Account, price uint64) (*creature.Record, error) {

	if !account.Valid(caller) {
		return nil, fault.InvalidAccount
	}
	if 0 == price {
		return nil, fault.InvalidPrice
	}

	// the caller's buffer must not alias the stored record
	id := make(creature.Identifier, len(identifier))
	copy(id, identifier)

	r.toLock.Lock()
	defer r.toLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	record, err := r.register(trx, id, caller, price)
	if nil != err {
		trx.Abort()
		r.log.Debugf("register: identifier: %x  caller: %s  error: %s", []byte(id), caller, err)
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("register: identifier: %x  commit error: %s", []byte(id), err)
		return nil, err
	}

	r.log.Infof("registered: identifier: %x  owner: %s  price: %d  trait: %s", []byte(id), caller, price, record.Trait)

	r.sink.Deposit(creature.Registered{
		Identifier: id,
		Owner:      caller,
	})

	return record, nil
}

// validate and write to the transaction
func (r *registry) register(trx storage.Transaction, identifier creature.Identifier, caller *account.Account, price uint64) (*creature.Record, error) {

	total, _ := trx.GetN(r.counters, totalKey)
	if math.MaxUint64 == total {
		return nil, fault.StorageOverflow
	}

	if r.configuration.RejectDuplicates && trx.Has(r.records.pool, identifier) {
		return nil, fault.IdentifierExists
	}

	if !r.index.Contains(trx, caller, identifier) && r.atLimit(trx, caller) {
		return nil, fault.StorageOverflow
	}

	record := creature.New(identifier, caller, price)
	err := r.records.Write(trx, record)
	if nil != err {
		return nil, err
	}

	trx.PutN(r.counters, totalKey, total+1)
	r.index.Append(trx, caller, identifier)

	return record, nil
}

// true if the owner cannot receive another creature
func (r *registry) atLimit(trx storage.Transaction, owner *account.Account) bool {
	maximum := r.configuration.MaximumHeld
	if 0 == maximum {
		return false
	}
	return r.index.Count(trx, owner) >= maximum
}
