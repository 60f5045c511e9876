// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

// Records - access to the stored creature records
type Records interface {
	Read(trx storage.Transaction, identifier creature.Identifier) (*creature.Record, bool)
	Write(trx storage.Transaction, record *creature.Record) error
}

// CheckTransfer - the stored record if from may transfer the identifier
//
// checks in order: listed by from, record exists, record owned by from
func (ix *index) CheckTransfer(
	trx storage.Transaction,
	records Records,
	identifier creature.Identifier,
	from *account.Account,
) (*creature.Record, error) {

	if !ix.Contains(trx, from, identifier) {
		return nil, fault.NotOwned
	}

	record, found := records.Read(trx, identifier)
	if !found {
		return nil, fault.NoSuchRecord
	}

	// a duplicate registration can leave a stale entry
	if !account.Equal(record.Owner, from) {
		return nil, fault.OwnerMismatch
	}

	return record, nil
}

// Transfer - move an identifier from one owner's list to the end of
// another's and update the stored record
//
// nothing is written to trx unless all checks pass
func (ix *index) Transfer(
	trx storage.Transaction,
	records Records,
	identifier creature.Identifier,
	from *account.Account,
	to *account.Account,
) (*creature.Record, error) {

	if !account.Valid(from) || !account.Valid(to) {
		return nil, fault.InvalidAccount
	}

	record, err := ix.CheckTransfer(trx, records, identifier, from)
	if nil != err {
		return nil, err
	}

	record.Owner = to
	err = records.Write(trx, record)
	if nil != err {
		return nil, err
	}

	ix.Remove(trx, from, identifier)
	ix.Append(trx, to, identifier)

	return record, nil
}
