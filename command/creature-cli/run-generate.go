// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	output := c.String("output")
	if "" == output {
		return ErrMissingIdentityFile
	}

	id, err := makeIdentity(m.testnet, m.password)
	if nil != err {
		return err
	}

	err = writeIdentity(output, id)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Account   string `json:"account"`
		PublicKey string `json:"public_key"`
		Encrypted bool   `json:"encrypted"`
		File      string `json:"file"`
	}{
		Account:   id.Account.String(),
		PublicKey: id.PublicKey,
		Encrypted: id.encrypted(),
		File:      output,
	})
}
