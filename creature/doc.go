// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package creature - the record kept for each registered creature
//
// Packed record layout (all lengths are Varint64):
//
//   length ++ identifier ++ length ++ owner account bytes ++ price ++ trait byte
//
// The trait is never supplied by a caller, it is derived from the
// identifier when the creature is registered.
package creature
