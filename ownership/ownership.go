// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/storage"
)

// from storage/doc.go:
//
// Ownership:
//   OwnerNextCount  owner              - next count value to use for appending to owned items
//   OwnerHeld       owner              - number of items currently owned
//   OwnerList       owner ++ count     - list of owned items
//   OwnerIndex      owner ++ identifier - position in list of owned items, for delete after transfer

// Handles - the pools used by the index
type Handles struct {
	OwnerNextCount *storage.PoolHandle
	OwnerHeld      *storage.PoolHandle
	OwnerList      *storage.PoolHandle
	OwnerIndex     *storage.PoolHandle
}

// Index - ordered list of identifiers per owner
//
// the trx parameter of a read may be nil to read committed data only
type Index interface {
	Append(trx storage.Transaction, owner *account.Account, identifier creature.Identifier) uint64
	Remove(trx storage.Transaction, owner *account.Account, identifier creature.Identifier) bool
	Contains(trx storage.Transaction, owner *account.Account, identifier creature.Identifier) bool
	Count(trx storage.Transaction, owner *account.Account) uint64
	List(owner *account.Account, start uint64, count int) ([]Item, uint64, error)
	Held(owner *account.Account) ([]creature.Identifier, error)
	CheckTransfer(trx storage.Transaction, records Records, identifier creature.Identifier, from *account.Account) (*creature.Record, error)
	Transfer(trx storage.Transaction, records Records, identifier creature.Identifier, from *account.Account, to *account.Account) (*creature.Record, error)
}

// Item - one entry of an owner's list
type Item struct {
	Position   uint64              `json:"position,string"`
	Identifier creature.Identifier `json:"identifier"`
}

type index struct {
	pools Handles
}

// New - create an index over the given pools
func New(pools Handles) Index {
	return &index{
		pools: pools,
	}
}

// either read through the transaction or directly from the pool
type reader interface {
	Get(*storage.PoolHandle, []byte) []byte
	GetN(*storage.PoolHandle, []byte) (uint64, bool)
	Has(*storage.PoolHandle, []byte) bool
}

type committed struct{}

func (committed) Get(p *storage.PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (committed) GetN(p *storage.PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

func (committed) Has(p *storage.PoolHandle, key []byte) bool {
	return p.Has(key)
}

func readerFor(trx storage.Transaction) reader {
	if nil == trx {
		return committed{}
	}
	return trx
}

func ownerKey(owner *account.Account, item []byte) []byte {
	ownerBytes := owner.Bytes()
	key := make([]byte, 0, len(ownerBytes)+len(item))
	key = append(key, ownerBytes...)
	return append(key, item...)
}

func countBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
