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

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier, err := checkIdentifier(c)
	if nil != err {
		return err
	}

	price := c.Uint64("price")
	if 0 == price {
		return fmt.Errorf("invalid price: %d", price)
	}

	owner, privateKey, err := readIdentity(c.GlobalString("identity"), m.getPassword)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identifier: %x\n", []byte(identifier))
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "price: %d\n", price)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(&rpccalls.RegisterData{
		Identifier: identifier,
		Owner:      owner,
		PrivateKey: privateKey,
		Price:      price,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
