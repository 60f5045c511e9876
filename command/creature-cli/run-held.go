// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/command/creature-cli/rpccalls"
)

func runHeld(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	var err error
	if text := c.String("owner"); "" != text {
		owner, err = account.AccountFromBase58(text)
	} else {
		owner, err = readAccount(c.GlobalString("identity"))
	}
	if nil != err {
		return err
	}

	start := c.Uint64("start")

	count := c.Int("count")
	if count <= 0 {
		return ErrInvalidCount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetHeld(&rpccalls.HeldData{
		Owner: owner,
		Start: start,
		Count: count,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
