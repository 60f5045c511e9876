// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/util"
)

// Record - a registered creature
type Record struct {
	Identifier Identifier       `json:"identifier"`
	Owner      *account.Account `json:"owner"`
	Price      uint64           `json:"price,string"`
	Trait      Trait            `json:"trait"`
}

// Packed - packed record as stored in the database
type Packed []byte

// New - build a record for a fresh registration
func New(identifier Identifier, owner *account.Account, price uint64) *Record {
	return &Record{
		Identifier: identifier,
		Owner:      owner,
		Price:      price,
		Trait:      DeriveTrait(identifier),
	}
}

// Pack - convert a record to its stored form
func (record *Record) Pack() (Packed, error) {
	if !account.Valid(record.Owner) {
		return nil, fault.InvalidAccount
	}
	if 0 == record.Price {
		return nil, fault.InvalidPrice
	}

	buffer := util.AppendBytes(nil, record.Identifier)
	buffer = util.AppendBytes(buffer, record.Owner.Bytes())
	buffer = util.AppendVarint64(buffer, record.Price)
	buffer = append(buffer, byte(record.Trait))
	return buffer, nil
}

// Unpack - convert a stored record back to a structure
func (packed Packed) Unpack() (*Record, error) {
	identifier, n := util.FromBytes(packed)
	if 0 == n {
		return nil, fault.ErrRecordTruncated
	}
	offset := n

	ownerBytes, n := util.FromBytes(packed[offset:])
	if 0 == n {
		return nil, fault.ErrRecordTruncated
	}
	offset += n

	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}

	price, n := util.FromVarint64(packed[offset:])
	if 0 == n {
		return nil, fault.ErrRecordTruncated
	}
	offset += n

	if len(packed) != offset+1 {
		return nil, fault.ErrRecordTruncated
	}
	trait := Trait(packed[offset])
	if TraitA != trait && TraitB != trait {
		return nil, fault.ErrInvalidTrait
	}

	record := &Record{
		Identifier: identifier,
		Owner:      owner,
		Price:      price,
		Trait:      trait,
	}
	return record, nil
}
