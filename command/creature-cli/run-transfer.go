// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/command/creature-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier, err := checkIdentifier(c)
	if nil != err {
		return err
	}

	receiver, err := checkAccount(c.String("receiver"))
	if nil != err {
		return err
	}

	owner, privateKey, err := readIdentity(c.GlobalString("identity"), m.getPassword)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identifier: %x\n", []byte(identifier))
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "sender: %s\n", owner)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&rpccalls.TransferData{
		Identifier: identifier,
		Owner:      owner,
		PrivateKey: privateKey,
		NewOwner:   receiver,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
