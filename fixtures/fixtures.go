// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for tests
package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - send critical logs to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Account - a distinct testing account that cannot sign
func Account(n byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.NothingAccount{
			Test:      true,
			PublicKey: []byte{0, n},
		},
	}
}

// KeyPair - a deterministic ed25519 testing account and its private key
func KeyPair(n byte) (*account.Account, ed25519.PrivateKey) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = n
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	a := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: []byte(privateKey.Public().(ed25519.PublicKey)),
		},
	}
	return a, privateKey
}
