// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier, err := checkIdentifier(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(identifier)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
