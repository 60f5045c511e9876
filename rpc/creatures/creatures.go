// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creatures

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/registry"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Creature
// --------

const (
	rateLimitCreature = 200
	rateBurstCreature = 100
)

// Creature - type for the RPC
type Creature struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create the creature RPC service
func New(log *logger.L, reg registry.Registry) *Creature {
	return &Creature{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitCreature, rateBurstCreature),
		Registry: reg,
	}
}

// Register
// --------

// RegisterArguments - arguments for RPC
//
// signature is by owner over creature.PackRegisterRequest
type RegisterArguments struct {
	Identifier creature.Identifier `json:"identifier"` // hex
	Owner      *account.Account    `json:"owner"`      // base58
	Price      uint64              `json:"price,string"`
	Signature  account.Signature   `json:"signature"` // hex
}

// RegisterReply - result of register RPC
type RegisterReply struct {
	Record *creature.Record `json:"record"`
	Total  uint64           `json:"total,string"`
}

// Register - create a new creature owned by the signer
func (c *Creature) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log

	if nil == arguments || !account.Valid(arguments.Owner) {
		return fault.InvalidAccount
	}

	log.Infof("Creature.Register: identifier: %x  owner: %s  price: %d", []byte(arguments.Identifier), arguments.Owner, arguments.Price)

	message := creature.PackRegisterRequest(arguments.Identifier, arguments.Owner, arguments.Price)
	err := arguments.Owner.CheckSignature(message, arguments.Signature)
	if nil != err {
		log.Warnf("Creature.Register: owner: %s  signature error: %s", arguments.Owner, err)
		return fault.ErrUnauthenticated
	}

	record, err := c.Registry.Register(arguments.Identifier, arguments.Owner, arguments.Price)
	if nil != err {
		return err
	}

	reply.Record = record
	reply.Total = c.Registry.Total()

	return nil
}

// Transfer
// --------

// TransferArguments - arguments for RPC
//
// signature is by from over creature.PackTransferRequest
type TransferArguments struct {
	Identifier creature.Identifier `json:"identifier"` // hex
	From       *account.Account    `json:"from"`       // base58
	To         *account.Account    `json:"to"`         // base58
	Signature  account.Signature   `json:"signature"`  // hex
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	Record *creature.Record `json:"record"`
}

// Transfer - move a creature from the signer to another account
func (c *Creature) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log

	if nil == arguments || !account.Valid(arguments.From) || !account.Valid(arguments.To) {
		return fault.InvalidAccount
	}

	log.Infof("Creature.Transfer: identifier: %x  from: %s  to: %s", []byte(arguments.Identifier), arguments.From, arguments.To)

	message := creature.PackTransferRequest(arguments.Identifier, arguments.From, arguments.To)
	err := arguments.From.CheckSignature(message, arguments.Signature)
	if nil != err {
		log.Warnf("Creature.Transfer: from: %s  signature error: %s", arguments.From, err)
		return fault.ErrUnauthenticated
	}

	err = c.Registry.Transfer(arguments.Identifier, arguments.From, arguments.To)
	if nil != err {
		return err
	}

	record, err := c.Registry.Get(arguments.Identifier)
	if nil != err {
		return err
	}
	reply.Record = record

	return nil
}

// Get
// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Identifier creature.Identifier `json:"identifier"` // hex
}

// GetReply - result of get RPC
type GetReply struct {
	Record *creature.Record `json:"record"`
}

// Get - fetch the record for an identifier
func (c *Creature) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	c.Log.Debugf("Creature.Get: identifier: %x", []byte(arguments.Identifier))

	record, err := c.Registry.Get(arguments.Identifier)
	if nil != err {
		return err
	}
	reply.Record = record

	return nil
}
