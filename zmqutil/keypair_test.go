// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/zmqutil"
)

const (
	hexKey = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
)

func TestParseKey(t *testing.T) {
	key, private, err := zmqutil.ParseKey("PUBLIC:" + hexKey + "\n")
	assert.Nil(t, err, "public key")
	assert.False(t, private, "public reported as private")
	assert.Equal(t, 32, len(key), "public length")

	key, private, err = zmqutil.ParseKey("  PRIVATE:" + hexKey)
	assert.Nil(t, err, "private key")
	assert.True(t, private, "private reported as public")
	assert.Equal(t, byte(0x11), key[1], "private content")

	_, _, err = zmqutil.ParseKey("PUBLIC:0011")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "short public")

	_, _, err = zmqutil.ParseKey("PRIVATE:0011")
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "short private")

	_, _, err = zmqutil.ParseKey(hexKey)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "untagged")

	_, err = zmqutil.ReadPublicKey("PRIVATE:" + hexKey)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "private as public")

	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + hexKey)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "public as private")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publisher.public")
	privateFile := filepath.Join(dir, "publisher.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "make key pair")

	publicKey, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(publicKey), "public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(privateKey), "private length")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.ErrKeyFileExists, err, "overwrite")
}

func TestCanonicalAddress(t *testing.T) {
	items := []struct {
		address string
		bindTo  string
		v6      bool
	}{
		{"127.0.0.1:2140", "tcp://127.0.0.1:2140", false},
		{"*:2140", "tcp://*:2140", false},
		{"[::1]:2140", "tcp://[::1]:2140", true},
		{" 0.0.0.0:1 ", "tcp://0.0.0.0:1", false},
	}
	for i, item := range items {
		bindTo, v6, err := zmqutil.CanonicalAddress(item.address)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.bindTo, bindTo, "%d: bind", i)
		assert.Equal(t, item.v6, v6, "%d: IPv6", i)
	}

	_, _, err := zmqutil.CanonicalAddress("localhost:2140")
	assert.Equal(t, fault.ErrInvalidIPAddress, err, "host name")

	_, _, err = zmqutil.CanonicalAddress("no-port")
	assert.NotNil(t, err, "missing port")
}
