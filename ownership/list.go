// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
)

// List - fetch a page of an owner's list in insertion order
//
// start is the first position to return, the second result is the
// position to use for the next page
func (ix *index) List(owner *account.Account, start uint64, count int) ([]Item, uint64, error) {
	if !account.Valid(owner) {
		return nil, start, fault.InvalidAccount
	}
	if count <= 0 {
		return nil, start, fault.ErrInvalidCount
	}

	ownerBytes := owner.Bytes()
	cursor := ix.pools.OwnerList.NewFetchCursor().Prefix(ownerBytes).Seek(ownerKey(owner, countBytes(start)))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}

	items := make([]Item, 0, len(elements))
	next := start
	for _, e := range elements {
		position := binary.BigEndian.Uint64(e.Key[len(ownerBytes):])
		items = append(items, Item{
			Position:   position,
			Identifier: creature.Identifier(e.Value),
		})
		next = position + 1
	}
	return items, next, nil
}

// Held - every identifier the owner currently holds in insertion order
func (ix *index) Held(owner *account.Account) ([]creature.Identifier, error) {
	if !account.Valid(owner) {
		return nil, fault.InvalidAccount
	}

	held := make([]creature.Identifier, 0)
	err := ix.pools.OwnerList.NewFetchCursor().Prefix(owner.Bytes()).Map(func(key []byte, value []byte) error {
		held = append(held, creature.Identifier(value))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return held, nil
}
