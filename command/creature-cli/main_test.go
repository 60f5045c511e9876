// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/counter"
	"github.com/bitmark-inc/creatured/fixtures"
	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/registry"
	"github.com/bitmark-inc/creatured/rpc/listeners"
	"github.com/bitmark-inc/creatured/rpc/server"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

func run(t *testing.T, arguments ...string) (string, error) {
	app := newApp()
	var out bytes.Buffer
	var errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"creature-cli"}, arguments...))
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	dir, err := ioutil.TempDir("", "creature-cli")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "id.json")
	out, err := run(t, "--testnet", "generate", "--output", fileName)
	assert.Nil(t, err, "generate")

	var reply map[string]interface{}
	err = json.Unmarshal([]byte(out), &reply)
	assert.Nil(t, err, "output is not JSON: %q", out)
	assert.Equal(t, fileName, reply["file"], "file")

	a, _, err := readIdentity(fileName, noPassword)
	assert.Nil(t, err, "read back")
	assert.Equal(t, a.String(), reply["account"], "account")

	assert.Equal(t, false, reply["encrypted"], "encrypted")

	_, err = run(t, "generate", "--output", fileName)
	assert.Equal(t, ErrIdentityFileExists, err, "overwrite")

	encrypted := filepath.Join(dir, "encrypted.json")
	out, err = run(t, "--password", "secret", "generate", "--output", encrypted)
	assert.Nil(t, err, "generate encrypted")
	assert.Contains(t, out, `"encrypted": true`, "encrypted flag")

	_, _, err = readIdentity(encrypted, password("secret"))
	assert.Nil(t, err, "read encrypted")

	_, err = run(t, "generate")
	assert.Equal(t, ErrMissingIdentityFile, err, "no output")
}

func TestCommandsAgainstServer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := storage.InitialiseMemory()
	assert.Nil(t, err, "storage")
	defer storage.Finalise()

	log := logger.New(fixtures.LogCategory)
	reg := registry.New(log, registry.Configuration{}, registry.DefaultHandles(), messagebus.New(nil))

	count := counter.Counter(0)
	l, err := listeners.NewRPC(
		&listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{"127.0.0.1:0"},
		},
		log,
		&count,
		server.Create(log, "test", &count, reg),
		nil,
	)
	assert.Nil(t, err, "listener")
	err = l.Serve()
	assert.Nil(t, err, "serve")
	defer l.Close()

	address := l.Addresses()[0]

	dir, err := ioutil.TempDir("", "creature-cli")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	one := filepath.Join(dir, "one.json")
	two := filepath.Join(dir, "two.json")
	_, err = run(t, "generate", "-o", one)
	assert.Nil(t, err, "generate one")
	_, err = run(t, "generate", "-o", two)
	assert.Nil(t, err, "generate two")
	accountTwo, _, err := readIdentity(two, noPassword)
	assert.Nil(t, err, "read two")

	_, err = run(t, "-c", address, "-i", one, "register", "-n", "Daisy", "-p", "5")
	assert.Nil(t, err, "register")

	_, err = run(t, "-c", address, "-i", one, "register", "-n", "Daisy")
	assert.NotNil(t, err, "zero price accepted")

	_, err = run(t, "-c", address, "-i", one, "register", "-p", "5")
	assert.Equal(t, ErrMissingIdentifier, err, "missing identifier")

	_, err = run(t, "-c", address, "-i", one, "transfer", "-n", "Daisy", "-r", accountTwo.String())
	assert.Nil(t, err, "transfer")

	out, err := run(t, "-c", address, "get", "-x", "-n", "4461697379")
	assert.Nil(t, err, "get")
	assert.Contains(t, out, accountTwo.String(), "owner")

	out, err = run(t, "-c", address, "-i", two, "held")
	assert.Nil(t, err, "held")
	assert.Contains(t, out, "4461697379", "held identifier")

	out, err = run(t, "-c", address, "info")
	assert.Nil(t, err, "info")
	assert.Contains(t, out, "\"creatures\": \"1\"", "info total")

	three := filepath.Join(dir, "three.json")
	_, err = run(t, "-P", "secret", "generate", "-o", three)
	assert.Nil(t, err, "generate three")

	_, err = run(t, "-c", address, "-i", three, "-P", "wrong", "register", "-n", "Rose", "-p", "2")
	assert.Equal(t, ErrWrongPassword, err, "wrong password")

	_, err = run(t, "-c", address, "-i", three, "-P", "secret", "register", "-n", "Rose", "-p", "2")
	assert.Nil(t, err, "register encrypted")

	out, err = run(t, "-c", address, "-i", three, "held")
	assert.Nil(t, err, "held without password")
	assert.Contains(t, out, "526f7365", "held identifier")
}
