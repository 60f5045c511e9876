// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/fixtures"
	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/publish"
)

func TestEncode(t *testing.T) {
	one := fixtures.Account(1)
	two := fixtures.Account(2)

	registered := creature.Registered{Identifier: creature.Identifier("ab"), Owner: one}
	message, err := publish.Encode(messagebus.Message{Name: registered.Name(), Event: registered})
	assert.Nil(t, err, "encode registered")
	assert.Equal(t, []byte("registered"), message[0], "registered name")
	assert.Equal(t, `{"identifier":"6162","owner":"`+one.String()+`"}`, string(message[1]), "registered body")

	transferred := creature.Transferred{From: one, To: two, Identifier: creature.Identifier("ab")}
	message, err = publish.Encode(messagebus.Message{Name: transferred.Name(), Event: transferred})
	assert.Nil(t, err, "encode transferred")
	assert.Equal(t, []byte("transferred"), message[0], "transferred name")
	assert.Equal(t, `{"from":"`+one.String()+`","to":"`+two.String()+`","identifier":"6162"}`, string(message[1]), "transferred body")
}

func TestDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	bus := messagebus.New(nil)

	err := publish.Initialise(&publish.Configuration{}, bus)
	assert.Nil(t, err, "initialise without addresses")
	assert.Equal(t, 0, bus.Listeners(), "listener added")

	err = publish.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "finalise when disabled")
}
