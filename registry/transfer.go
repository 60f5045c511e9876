// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

// Transfer - move a creature from one owner to another
//
// transfer to self is allowed and moves the identifier to the end of
// the owner's list
func (r *registry) Transfer(identifier creature.Identifier, from *account.Account, to *account.Account) error {

	if !account.Valid(from) || !account.Valid(to) {
		return fault.InvalidAccount
	}

	// the event must not alias the caller's buffer
	id := make(creature.Identifier, len(identifier))
	copy(id, identifier)
	identifier = id

	r.toLock.Lock()
	defer r.toLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = r.transfer(trx, identifier, from, to)
	if nil != err {
		trx.Abort()
		r.log.Debugf("transfer: identifier: %x  from: %s  to: %s  error: %s", []byte(identifier), from, to, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("transfer: identifier: %x  commit error: %s", []byte(identifier), err)
		return err
	}

	r.log.Infof("transferred: identifier: %x  from: %s  to: %s", []byte(identifier), from, to)

	r.sink.Deposit(creature.Transferred{
		From:       from,
		To:         to,
		Identifier: identifier,
	})

	return nil
}

func (r *registry) transfer(trx storage.Transaction, identifier creature.Identifier, from *account.Account, to *account.Account) error {

	// ownership failures take precedence over a full destination
	_, err := r.index.CheckTransfer(trx, r.records, identifier, from)
	if nil != err {
		return err
	}

	if !account.Equal(from, to) && r.atLimit(trx, to) {
		return fault.StorageOverflow
	}

	_, err = r.index.Transfer(trx, r.records, identifier, from, to)
	return err
}
