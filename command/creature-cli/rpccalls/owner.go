// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/rpc/owner"
)

// HeldData - which page of an owner's creatures
type HeldData struct {
	Owner *account.Account
	Start uint64
	Count int
}

// GetHeld - list creatures held by an account
func (client *Client) GetHeld(data *HeldData) (*owner.CreaturesReply, error) {

	arguments := owner.CreaturesArguments{
		Owner: data.Owner,
		Start: data.Start,
		Count: data.Count,
	}

	client.printf("held request: %+v\n", arguments)

	var reply owner.CreaturesReply
	if err := client.client.Call("Owner.Creatures", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
