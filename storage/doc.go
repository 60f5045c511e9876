// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. count        = successive index value as big endian uint64 (8 bytes)
// 4. owner        = account bytes (variant ++ public key)
// 5. identifier   = creature identifier, arbitrary bytes (may be empty)
//
// Creatures:
//
//   C ++ identifier            - registered creature
//                                data: packed creature record
//
// Counters:
//
//   N ++ name                  - named counter
//                                data: count
//
// Ownership:
//
//   X ++ owner                 - next count value to use for appending to owned items
//                                data: count
//   H ++ owner                 - number of items currently owned
//                                data: count
//   L ++ owner ++ count        - list of owned items
//                                data: identifier
//   D ++ owner ++ identifier   - position in list of owned items, for delete after transfer
//                                data: count
//
// All writes go through a Transaction; the batch is applied with a
// single LevelDB write so readers never see a partial update.
package storage
