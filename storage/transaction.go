// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/creatured/fault"
)

// Transaction - a group of writes applied all together or not at all
//
// reads made through the transaction see its own pending writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache Cache
}

func newTransaction() *transaction {
	return &transaction{
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionAlreadyInUse
	}
	t.inUse = true
	t.batch.Reset()
	t.cache.Clear()

	return nil
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	t.batch.Put(k, value)
	t.cache.Set(dbPut, string(k), value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.batch.Delete(k)
	t.cache.Set(dbDelete, string(k), nil)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	value, deleted, found := t.cache.Get(string(p.prefixKey(key)))
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return p.Get(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	_, deleted, found := t.cache.Get(string(p.prefixKey(key)))
	if deleted {
		return false
	}
	if found {
		return true
	}
	return p.Has(key)
}

// Commit - write all pending changes with a single database write
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotInProgress
	}

	var err error
	if t.batch.Len() > 0 {
		poolData.RLock()
		if nil == poolData.db {
			err = fault.ErrDatabaseIsNotSet
		} else {
			err = poolData.db.Write(t.batch, nil)
		}
		poolData.RUnlock()
	}

	t.reset()
	return err
}

// Abort - discard all pending changes
func (t *transaction) Abort() {
	t.Lock()
	t.reset()
	t.Unlock()
}

// must hold the lock
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
