// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
)

// Event - notification emitted after a successful state change
type Event interface {
	Name() string
}

// Registered - a creature was registered
type Registered struct {
	Identifier Identifier       `json:"identifier"`
	Owner      *account.Account `json:"owner"`
}

// Transferred - a creature changed owner
type Transferred struct {
	From       *account.Account `json:"from"`
	To         *account.Account `json:"to"`
	Identifier Identifier       `json:"identifier"`
}

// Name - event name
func (Registered) Name() string { return "registered" }

// Name - event name
func (Transferred) Name() string { return "transferred" }
