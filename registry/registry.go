// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - register creatures and transfer their ownership
//
// each operation validates, then writes the record, the counter and
// the ownership index in one storage transaction and finally emits an
// event to the sink
package registry

import (
	"sync"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/ownership"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// key of the registration counter in the counters pool
var totalKey = []byte("creatures")

// Configuration - registry options
type Configuration struct {
	RejectDuplicates bool   `gluamapper:"reject_duplicates" json:"reject_duplicates"`
	MaximumHeld      uint64 `gluamapper:"maximum_held" json:"maximum_held"`
}

// Sink - receives an event after each successful operation
type Sink interface {
	Deposit(creature.Event)
}

// Handles - the pools used by the registry
type Handles struct {
	Creatures *storage.PoolHandle
	Counters  *storage.PoolHandle
	Ownership ownership.Handles
}

// Registry - the creature registry
type Registry interface {
	Register(identifier creature.Identifier, caller *account.Account, price uint64) (*creature.Record, error)
	Transfer(identifier creature.Identifier, from *account.Account, to *account.Account) error
	Total() uint64
	Get(identifier creature.Identifier) (*creature.Record, error)
	Held(owner *account.Account) ([]creature.Identifier, error)
	List(owner *account.Account, start uint64, count int) ([]ownership.Item, uint64, error)
	Reconfigure(configuration Configuration)
}

type registry struct {
	toLock sync.Mutex // to ensure synchronised updates

	log           *logger.L
	configuration Configuration
	counters      *storage.PoolHandle
	records       records
	index         ownership.Index
	sink          Sink
}

// New - create a registry over the given pools
func New(log *logger.L, configuration Configuration, pools Handles, sink Sink) Registry {
	return &registry{
		log:           log,
		configuration: configuration,
		counters:      pools.Counters,
		records: records{
			pool: pools.Creatures,
		},
		index: ownership.New(pools.Ownership),
		sink:  sink,
	}
}

// DefaultHandles - the pools from the open database
func DefaultHandles() Handles {
	return Handles{
		Creatures: storage.Pool.Creatures,
		Counters:  storage.Pool.Counters,
		Ownership: ownership.Handles{
			OwnerNextCount: storage.Pool.OwnerNextCount,
			OwnerHeld:      storage.Pool.OwnerHeld,
			OwnerList:      storage.Pool.OwnerList,
			OwnerIndex:     storage.Pool.OwnerIndex,
		},
	}
}

// Reconfigure - replace the options, takes effect from the next operation
func (r *registry) Reconfigure(configuration Configuration) {
	r.toLock.Lock()
	r.configuration = configuration
	r.toLock.Unlock()

	r.log.Infof("reconfigured: %+v", configuration)
}

// Total - number of successful registrations
func (r *registry) Total() uint64 {
	return TotalFrom(r.counters)
}

// TotalFrom - read the registration counter from a counters pool
func TotalFrom(counters *storage.PoolHandle) uint64 {
	n, _ := counters.GetN(totalKey)
	return n
}

// Held - identifiers currently held by an owner in insertion order
func (r *registry) Held(owner *account.Account) ([]creature.Identifier, error) {
	return r.index.Held(owner)
}

// List - a page of the identifiers held by an owner
func (r *registry) List(owner *account.Account, start uint64, count int) ([]ownership.Item, uint64, error) {
	return r.index.List(owner, start, count)
}
