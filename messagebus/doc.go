// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out registry events to all listeners
//
// delivery never blocks the sender: a listener whose queue is full
// misses the event
package messagebus
