// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// the creature pool seen through a transaction
type records struct {
	pool *storage.PoolHandle
}

func (rs records) Read(trx storage.Transaction, identifier creature.Identifier) (*creature.Record, bool) {
	return unpack(identifier, trx.Get(rs.pool, identifier))
}

func (rs records) Write(trx storage.Transaction, record *creature.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trx.Put(rs.pool, record.Identifier, packed)
	return nil
}

// stored records were packed by Write so failure means corruption
func unpack(identifier creature.Identifier, packed []byte) (*creature.Record, bool) {
	if nil == packed {
		return nil, false
	}
	record, err := creature.Packed(packed).Unpack()
	if nil != err {
		logger.Panicf("registry: identifier: %x  corrupt record: %s", []byte(identifier), err)
	}
	return record, true
}

// Get - the committed record for an identifier
func (r *registry) Get(identifier creature.Identifier) (*creature.Record, error) {
	record, found := unpack(identifier, r.records.pool.Get(identifier))
	if !found {
		return nil, fault.NoSuchRecord
	}
	return record, nil
}
