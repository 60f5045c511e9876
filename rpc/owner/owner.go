// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/ownership"
	"github.com/bitmark-inc/creatured/registry"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// Owner creatures
// ---------------

const (
	MaximumCreaturesCount = 100
	rateLimitOwner        = 200
	rateBurstOwner        = 100
)

// CreaturesArguments - arguments for RPC
type CreaturesArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first position
	Count int              `json:"count"`        // number of records
}

// CreaturesReply - result of owner RPC
type CreaturesReply struct {
	Next uint64           `json:"next,string"` // Start value for the next call
	Data []ownership.Item `json:"data"`        // identifiers in insertion order
}

// New - create the owner RPC service
func New(log *logger.L, reg registry.Registry) *Owner {
	return &Owner{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Registry: reg,
	}
}

// Creatures - list creatures belonging to an account
func (owner *Owner) Creatures(arguments *CreaturesArguments, reply *CreaturesReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumCreaturesCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Creatures: %+v", arguments)

	if !account.Valid(arguments.Owner) {
		return fault.InvalidAccount
	}

	items, next, err := owner.Registry.List(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("ownership: %+v", items)

	reply.Data = items
	reply.Next = next

	return nil
}
