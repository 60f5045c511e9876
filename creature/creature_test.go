// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
)

func makeAccount(n byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.NothingAccount{
			Test:      true,
			PublicKey: []byte{0, n},
		},
	}
}

func TestDeriveTrait(t *testing.T) {
	traits := []struct {
		identifier string
		trait      creature.Trait
	}{
		{"", creature.TraitA},
		{"a", creature.TraitB},
		{"ab", creature.TraitA},
		{"Tom Hank", creature.TraitA},
		{"Mickey Mouse", creature.TraitA},
		{"Donald Duck", creature.TraitB},
	}

	for i, item := range traits {
		id := creature.Identifier(item.identifier)
		first := creature.DeriveTrait(id)
		second := creature.DeriveTrait(id)
		if first != second {
			t.Errorf("%d: not deterministic: %s != %s", i, first, second)
		}
		if item.trait != first {
			t.Errorf("%d: %q -> %s  expected: %s", i, item.identifier, first, item.trait)
		}
	}
}

func TestNewRecord(t *testing.T) {
	owner := makeAccount(1)
	r := creature.New(creature.Identifier("Donald Duck"), owner, 10)

	assert.Equal(t, creature.TraitB, r.Trait, "wrong trait")
	assert.Equal(t, uint64(10), r.Price, "wrong price")
	assert.True(t, account.Equal(owner, r.Owner), "wrong owner")
}

func TestPackUnpack(t *testing.T) {
	for _, id := range []string{"", "Mickey Mouse", "Donald Duck"} {
		r := creature.New(creature.Identifier(id), makeAccount(7), 300)

		packed, err := r.Pack()
		if !assert.Nil(t, err, "pack %q", id) {
			continue
		}

		unpacked, err := packed.Unpack()
		if !assert.Nil(t, err, "unpack %q", id) {
			continue
		}
		assert.Equal(t, []byte(r.Identifier), []byte(unpacked.Identifier), "identifier")
		assert.True(t, account.Equal(r.Owner, unpacked.Owner), "owner")
		assert.Equal(t, r.Price, unpacked.Price, "price")
		assert.Equal(t, r.Trait, unpacked.Trait, "trait")
	}
}

func TestPackInvalid(t *testing.T) {
	_, err := creature.New(creature.Identifier("x"), makeAccount(1), 0).Pack()
	assert.Equal(t, fault.InvalidPrice, err, "zero price")

	_, err = creature.New(creature.Identifier("x"), nil, 1).Pack()
	assert.Equal(t, fault.InvalidAccount, err, "nil owner")
}

func TestUnpackTruncated(t *testing.T) {
	packed, err := creature.New(creature.Identifier("Tom Hank"), makeAccount(2), 20).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	for n := 0; n < len(packed); n += 1 {
		_, err := packed[:n].Unpack()
		assert.NotNil(t, err, "truncated at: %d", n)
	}

	extended := append(append(creature.Packed{}, packed...), 0x00)
	_, err = extended.Unpack()
	assert.Equal(t, fault.ErrRecordTruncated, err, "trailing data")

	bad := append(creature.Packed{}, packed...)
	bad[len(bad)-1] = 0x05
	_, err = bad.Unpack()
	assert.Equal(t, fault.ErrInvalidTrait, err, "bad trait")
}

func TestJSON(t *testing.T) {
	r := creature.New(creature.Identifier("ab"), makeAccount(1), 5)
	buffer, err := json.Marshal(r)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	expected := `{"identifier":"6162","owner":"` + r.Owner.String() + `","price":"5","trait":"A"}`
	assert.Equal(t, expected, string(buffer), "wrong JSON")

	var decoded creature.Record
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, creature.Identifier("ab"), decoded.Identifier, "identifier")
	assert.Equal(t, creature.TraitA, decoded.Trait, "trait")
	assert.True(t, account.Equal(r.Owner, decoded.Owner), "owner")
}

func TestRequestPacking(t *testing.T) {
	one := makeAccount(1)
	two := makeAccount(2)
	id := creature.Identifier("ab")

	r1 := creature.PackRegisterRequest(id, one, 5)
	r2 := creature.PackRegisterRequest(id, one, 6)
	r3 := creature.PackRegisterRequest(id, two, 5)
	assert.NotEqual(t, r1, r2, "price not covered")
	assert.NotEqual(t, r1, r3, "owner not covered")
	assert.Equal(t, r1, creature.PackRegisterRequest(creature.Identifier("ab"), one, 5), "not deterministic")

	t1 := creature.PackTransferRequest(id, one, two)
	t2 := creature.PackTransferRequest(id, two, one)
	assert.NotEqual(t, t1, t2, "direction not covered")
	assert.Equal(t, byte(0x01), r1[0], "register tag")
	assert.Equal(t, byte(0x02), t1[0], "transfer tag")
}
