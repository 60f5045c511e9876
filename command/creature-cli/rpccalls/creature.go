// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/rpc/creatures"
)

// RegisterData - what to register and who signs
type RegisterData struct {
	Identifier creature.Identifier
	Owner      *account.Account
	PrivateKey ed25519.PrivateKey
	Price      uint64
}

// TransferData - what to move, who signs and who receives
type TransferData struct {
	Identifier creature.Identifier
	Owner      *account.Account
	PrivateKey ed25519.PrivateKey
	NewOwner   *account.Account
}

// Register - sign and send a registration
func (client *Client) Register(data *RegisterData) (*creatures.RegisterReply, error) {

	message := creature.PackRegisterRequest(data.Identifier, data.Owner, data.Price)
	arguments := creatures.RegisterArguments{
		Identifier: data.Identifier,
		Owner:      data.Owner,
		Price:      data.Price,
		Signature:  ed25519.Sign(data.PrivateKey, message),
	}

	client.printf("register request: %+v\n", arguments)

	var reply creatures.RegisterReply
	if err := client.client.Call("Creature.Register", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Transfer - sign and send a transfer
func (client *Client) Transfer(data *TransferData) (*creatures.TransferReply, error) {

	message := creature.PackTransferRequest(data.Identifier, data.Owner, data.NewOwner)
	arguments := creatures.TransferArguments{
		Identifier: data.Identifier,
		From:       data.Owner,
		To:         data.NewOwner,
		Signature:  ed25519.Sign(data.PrivateKey, message),
	}

	client.printf("transfer request: %+v\n", arguments)

	var reply creatures.TransferReply
	if err := client.client.Call("Creature.Transfer", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Get - fetch a single record
func (client *Client) Get(identifier creature.Identifier) (*creatures.GetReply, error) {

	arguments := creatures.GetArguments{
		Identifier: identifier,
	}

	var reply creatures.GetReply
	if err := client.client.Call("Creature.Get", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
