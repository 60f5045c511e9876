// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/command/creature-cli/rpccalls"
	"github.com/bitmark-inc/creatured/creature"
)

// identifier from flags, either plain text or hex
//
// an empty identifier is valid for the registry but must be given
// explicitly as --hex with an empty value
func checkIdentifier(c *cli.Context) (creature.Identifier, error) {
	text := c.String("identifier")
	if c.Bool("hex") {
		b, err := hex.DecodeString(text)
		if nil != err {
			return nil, err
		}
		return creature.Identifier(b), nil
	}
	if "" == text {
		return nil, ErrMissingIdentifier
	}
	return creature.Identifier(text), nil
}

func checkAccount(text string) (*account.Account, error) {
	if "" == text {
		return nil, ErrMissingReceiver
	}
	return account.AccountFromBase58(text)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connecting to: %s  TLS: %t\n", m.connect, m.useTLS)
	}
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

// password from the flag or environment, otherwise prompt on a terminal
func (m *metadata) getPassword() (string, error) {
	if "" != m.password {
		return m.password, nil
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", ErrMissingPassword
	}

	fmt.Fprintf(m.e, "identity password: ")
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintf(m.e, "\n")
	if nil != err {
		return "", err
	}
	return string(password), nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
