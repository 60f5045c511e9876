// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/fixtures"
	"github.com/bitmark-inc/creatured/registry"
	"github.com/bitmark-inc/creatured/registry/mocks"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// keeps every event in order
type eventList struct {
	events []creature.Event
}

func (l *eventList) Deposit(e creature.Event) {
	l.events = append(l.events, e)
}

func (l *eventList) last() creature.Event {
	if 0 == len(l.events) {
		return nil
	}
	return l.events[len(l.events)-1]
}

func setupRegistry(t *testing.T, configuration registry.Configuration, sink registry.Sink) registry.Registry {
	fixtures.SetupTestLogger()

	err := storage.InitialiseMemory()
	assert.Nil(t, err, "memory database initialise")

	return registry.New(logger.New(fixtures.LogCategory), configuration, registry.DefaultHandles(), sink)
}

func teardownRegistry() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func held(t *testing.T, r registry.Registry, owner *account.Account) []string {
	identifiers, err := r.Held(owner)
	assert.Nil(t, err, "held")
	result := make([]string, len(identifiers))
	for i, id := range identifiers {
		result[i] = string(id)
	}
	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// register and transfer as the five scenarios describe them
func TestScenarios(t *testing.T) {
	sink := &eventList{}
	r := setupRegistry(t, registry.Configuration{}, sink)
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)
	three := fixtures.Account(3)

	mickey := creature.Identifier("Mickey Mouse")
	tom := creature.Identifier("Tom Hank")

	// scenario 1
	record, err := r.Register(mickey, one, 10)
	assert.Nil(t, err, "register mickey")
	assert.Equal(t, uint64(1), r.Total(), "total after first")
	assert.True(t, account.Equal(one, record.Owner), "first owner")
	assert.Equal(t, creature.DeriveTrait(mickey), record.Trait, "trait")
	assert.Equal(t, uint64(10), record.Price, "price")

	// scenario 2
	_, err = r.Register(tom, one, 20)
	assert.Nil(t, err, "register tom")
	assert.Equal(t, uint64(2), r.Total(), "total after second")
	assert.Equal(t, creature.Registered{Identifier: tom, Owner: one}, sink.last(), "last event")

	// scenario 3
	err = r.Transfer(mickey, one, two)
	assert.Nil(t, err, "transfer")
	assert.False(t, contains(held(t, r, one), string(mickey)), "still held by one")
	assert.True(t, contains(held(t, r, two), string(mickey)), "not held by two")
	stored, err := r.Get(mickey)
	assert.Nil(t, err, "get")
	assert.True(t, account.Equal(two, stored.Owner), "owner after transfer")
	assert.Equal(t, creature.Transferred{From: one, To: two, Identifier: mickey}, sink.last(), "transfer event")

	// scenario 4
	events := len(sink.events)
	err = r.Transfer(mickey, three, two)
	assert.Equal(t, fault.NotOwned, err, "transfer by non owner")
	assert.Equal(t, events, len(sink.events), "event emitted on failure")
	assert.Equal(t, []string{"Tom Hank"}, held(t, r, one), "one changed")
	assert.Equal(t, []string{"Mickey Mouse"}, held(t, r, two), "two changed")
	assert.Equal(t, 0, len(held(t, r, three)), "three changed")
	stored, _ = r.Get(mickey)
	assert.True(t, account.Equal(two, stored.Owner), "owner changed")

	// scenario 5
	empty := creature.Identifier("")
	_, err = r.Register(empty, one, 5)
	assert.Nil(t, err, "register empty by one")
	_, err = r.Register(empty, two, 7)
	assert.Nil(t, err, "register empty by two")

	stored, err = r.Get(empty)
	assert.Nil(t, err, "get empty")
	assert.True(t, account.Equal(two, stored.Owner), "overwritten owner")
	assert.Equal(t, uint64(7), stored.Price, "overwritten price")
	assert.True(t, contains(held(t, r, one), ""), "orphaned entry missing")
	assert.True(t, contains(held(t, r, two), ""), "new entry missing")
	assert.Equal(t, uint64(4), r.Total(), "total counts duplicates")

	// stale entry is detected
	err = r.Transfer(empty, one, three)
	assert.Equal(t, fault.OwnerMismatch, err, "transfer of stale entry")
}

func TestRegisterInvalid(t *testing.T) {
	sink := &eventList{}
	r := setupRegistry(t, registry.Configuration{}, sink)
	defer teardownRegistry()

	_, err := r.Register(creature.Identifier("x"), fixtures.Account(1), 0)
	assert.Equal(t, fault.InvalidPrice, err, "zero price")

	_, err = r.Register(creature.Identifier("x"), nil, 1)
	assert.Equal(t, fault.InvalidAccount, err, "nil caller")

	_, err = r.Register(creature.Identifier("x"), &account.Account{}, 1)
	assert.Equal(t, fault.InvalidAccount, err, "empty caller")

	assert.Equal(t, uint64(0), r.Total(), "total changed")
	assert.Equal(t, 0, len(sink.events), "events emitted")

	_, err = r.Get(creature.Identifier("x"))
	assert.Equal(t, fault.NoSuchRecord, err, "record created")
	assert.Equal(t, 0, len(held(t, r, fixtures.Account(1))), "index changed")
}

func TestRegisterEvents(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sink := mocks.NewMockSink(ctl)
	r := setupRegistry(t, registry.Configuration{}, sink)
	defer teardownRegistry()

	owner, _ := fixtures.KeyPair(7)
	id := creature.Identifier("Donald Duck")

	sink.EXPECT().Deposit(creature.Registered{Identifier: id, Owner: owner}).Times(1)

	record, err := r.Register(id, owner, 99)
	assert.Nil(t, err, "register")
	assert.Equal(t, creature.TraitB, record.Trait, "odd length trait")
}

func TestCallerBufferNotAliased(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{}, &eventList{})
	defer teardownRegistry()

	buffer := []byte("abc")
	record, err := r.Register(creature.Identifier(buffer), fixtures.Account(1), 1)
	assert.Nil(t, err, "register")

	buffer[0] = 'z'
	assert.Equal(t, creature.Identifier("abc"), record.Identifier, "record aliases caller buffer")
	_, err = r.Get(creature.Identifier("abc"))
	assert.Nil(t, err, "stored under original identifier")
}

func TestTransferEventNotAliased(t *testing.T) {
	sink := &eventList{}
	r := setupRegistry(t, registry.Configuration{}, sink)
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)

	_, err := r.Register(creature.Identifier("abc"), one, 1)
	assert.Nil(t, err, "register")

	buffer := []byte("abc")
	err = r.Transfer(creature.Identifier(buffer), one, two)
	assert.Nil(t, err, "transfer")

	buffer[0] = 'z'
	event, ok := sink.last().(creature.Transferred)
	assert.True(t, ok, "transfer event")
	assert.Equal(t, creature.Identifier("abc"), event.Identifier, "event aliases caller buffer")
	assert.Equal(t, []string{"abc"}, held(t, r, two), "held under original identifier")
}

func TestStaleEntryToFullOwner(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{MaximumHeld: 1}, &eventList{})
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)
	three := fixtures.Account(3)

	_, err := r.Register(creature.Identifier("a"), one, 1)
	assert.Nil(t, err, "register by one")
	_, err = r.Register(creature.Identifier("a"), two, 1)
	assert.Nil(t, err, "overwrite by two")
	_, err = r.Register(creature.Identifier("b"), three, 1)
	assert.Nil(t, err, "fill three")

	err = r.Transfer(creature.Identifier("a"), one, three)
	assert.Equal(t, fault.OwnerMismatch, err, "stale entry to full owner")

	err = r.Transfer(creature.Identifier("q"), one, three)
	assert.Equal(t, fault.NotOwned, err, "not owned to full owner")

	err = r.Transfer(creature.Identifier("a"), two, three)
	assert.Equal(t, fault.StorageOverflow, err, "owned to full owner")
	assert.Equal(t, []string{"b"}, held(t, r, three), "three changed")
}

func TestUniqueCount(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{}, &eventList{})
	defer teardownRegistry()

	owner := fixtures.Account(1)
	names := []string{"a", "bb", "ccc", "dddd", "eeeee"}
	for _, name := range names {
		_, err := r.Register(creature.Identifier(name), owner, 1)
		assert.Nil(t, err, "register: %s", name)
	}
	assert.Equal(t, uint64(len(names)), r.Total(), "total")
	assert.Equal(t, names, held(t, r, owner), "insertion order")

	for _, name := range names {
		record, err := r.Get(creature.Identifier(name))
		assert.Nil(t, err, "get: %s", name)
		assert.Equal(t, creature.DeriveTrait(creature.Identifier(name)), record.Trait, "trait: %s", name)
	}
}

func TestSameOwnerReregister(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{}, &eventList{})
	defer teardownRegistry()

	owner := fixtures.Account(1)
	_, _ = r.Register(creature.Identifier("a"), owner, 1)
	_, _ = r.Register(creature.Identifier("b"), owner, 1)
	_, err := r.Register(creature.Identifier("a"), owner, 3)
	assert.Nil(t, err, "re-register")

	assert.Equal(t, []string{"a", "b"}, held(t, r, owner), "entry duplicated or moved")
	record, _ := r.Get(creature.Identifier("a"))
	assert.Equal(t, uint64(3), record.Price, "price not overwritten")
	assert.Equal(t, uint64(3), r.Total(), "total")
}

func TestRejectDuplicates(t *testing.T) {
	sink := &eventList{}
	r := setupRegistry(t, registry.Configuration{RejectDuplicates: true}, sink)
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)

	_, err := r.Register(creature.Identifier(""), one, 5)
	assert.Nil(t, err, "first register")

	_, err = r.Register(creature.Identifier(""), two, 7)
	assert.Equal(t, fault.IdentifierExists, err, "duplicate")

	record, _ := r.Get(creature.Identifier(""))
	assert.True(t, account.Equal(one, record.Owner), "owner changed")
	assert.Equal(t, uint64(1), r.Total(), "total changed")
	assert.Equal(t, 0, len(held(t, r, two)), "index changed")
	assert.Equal(t, 1, len(sink.events), "event emitted")
}

func TestReconfigure(t *testing.T) {
	sink := &eventList{}
	r := setupRegistry(t, registry.Configuration{}, sink)
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)

	_, err := r.Register(creature.Identifier("x"), one, 5)
	assert.Nil(t, err, "first register")

	r.Reconfigure(registry.Configuration{RejectDuplicates: true})

	_, err = r.Register(creature.Identifier("x"), two, 6)
	assert.Equal(t, fault.IdentifierExists, err, "duplicate after reconfigure")

	r.Reconfigure(registry.Configuration{MaximumHeld: 1})

	_, err = r.Register(creature.Identifier("y"), one, 6)
	assert.Equal(t, fault.StorageOverflow, err, "maximum held after reconfigure")
	assert.Equal(t, uint64(1), r.Total(), "total")
}

func TestTransferMoves(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{}, &eventList{})
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)

	for _, name := range []string{"a", "b", "c"} {
		_, _ = r.Register(creature.Identifier(name), one, 1)
	}
	_, _ = r.Register(creature.Identifier("z"), two, 1)

	err := r.Transfer(creature.Identifier("b"), one, two)
	assert.Nil(t, err, "transfer")

	assert.Equal(t, []string{"a", "c"}, held(t, r, one), "one")
	assert.Equal(t, []string{"z", "b"}, held(t, r, two), "two")

	// second transfer of the same creature by the old owner fails
	err = r.Transfer(creature.Identifier("b"), one, two)
	assert.Equal(t, fault.NotOwned, err, "transfer twice")
	assert.Equal(t, []string{"z", "b"}, held(t, r, two), "duplicated")

	items, next, err := r.List(two, 0, 1)
	assert.Nil(t, err, "list")
	assert.Equal(t, 1, len(items), "page size")
	assert.Equal(t, creature.Identifier("z"), items[0].Identifier, "first page")

	items, _, err = r.List(two, next, 1)
	assert.Nil(t, err, "list")
	assert.Equal(t, creature.Identifier("b"), items[0].Identifier, "second page")
}

func TestSelfTransfer(t *testing.T) {
	sink := &eventList{}
	r := setupRegistry(t, registry.Configuration{}, sink)
	defer teardownRegistry()

	one := fixtures.Account(1)
	for _, name := range []string{"a", "b", "c"} {
		_, _ = r.Register(creature.Identifier(name), one, 1)
	}

	err := r.Transfer(creature.Identifier("a"), one, one)
	assert.Nil(t, err, "self transfer")
	assert.Equal(t, []string{"b", "c", "a"}, held(t, r, one), "order after self transfer")
	assert.Equal(t, creature.Transferred{From: one, To: one, Identifier: creature.Identifier("a")}, sink.last(), "event")
}

func TestTransferInvalidAccount(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{}, &eventList{})
	defer teardownRegistry()

	one := fixtures.Account(1)
	_, _ = r.Register(creature.Identifier("a"), one, 1)

	err := r.Transfer(creature.Identifier("a"), one, nil)
	assert.Equal(t, fault.InvalidAccount, err, "nil destination")

	err = r.Transfer(creature.Identifier("a"), one, &account.Account{AccountInterface: &account.ED25519Account{PublicKey: []byte{1, 2}}})
	assert.Equal(t, fault.InvalidAccount, err, "short destination key")

	assert.Equal(t, []string{"a"}, held(t, r, one), "index changed")
}

func TestMaximumHeld(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{MaximumHeld: 2}, &eventList{})
	defer teardownRegistry()

	one := fixtures.Account(1)
	two := fixtures.Account(2)

	_, err := r.Register(creature.Identifier("a"), one, 1)
	assert.Nil(t, err, "first")
	_, err = r.Register(creature.Identifier("b"), one, 1)
	assert.Nil(t, err, "second")
	_, err = r.Register(creature.Identifier("c"), one, 1)
	assert.Equal(t, fault.StorageOverflow, err, "third")
	assert.Equal(t, uint64(2), r.Total(), "total after overflow")

	// re-registering a held identifier does not grow the list
	_, err = r.Register(creature.Identifier("a"), one, 2)
	assert.Nil(t, err, "re-register at limit")

	// self transfer at the limit is allowed
	err = r.Transfer(creature.Identifier("a"), one, one)
	assert.Nil(t, err, "self transfer at limit")

	_, _ = r.Register(creature.Identifier("x"), two, 1)
	_, _ = r.Register(creature.Identifier("y"), two, 1)
	err = r.Transfer(creature.Identifier("a"), one, two)
	assert.Equal(t, fault.StorageOverflow, err, "transfer to full owner")
	assert.Equal(t, []string{"b", "a"}, held(t, r, one), "one changed")
	assert.Equal(t, []string{"x", "y"}, held(t, r, two), "two changed")
}

func TestPersistence(t *testing.T) {
	r := setupRegistry(t, registry.Configuration{}, &eventList{})
	defer teardownRegistry()

	_, _ = r.Register(creature.Identifier("a"), fixtures.Account(1), 1)

	// a second registry over the same pools sees the same state
	other := registry.New(logger.New(fixtures.LogCategory), registry.Configuration{}, registry.DefaultHandles(), &eventList{})
	assert.Equal(t, uint64(1), other.Total(), "total")
	assert.Equal(t, uint64(1), registry.TotalFrom(storage.Pool.Counters), "total from pool")
}
