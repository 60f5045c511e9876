// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	useTLS   bool
	testnet  bool
	verbose  bool
	password string
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "creature-cli"
	app.Usage = "register and transfer creatures"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	identifierFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "identifier, n",
			Value: "",
			Usage: "*creature identifier `TEXT`",
		},
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: " identifier is given as hex",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " creatured RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.BoolFlag{
			Name:  "testnet, T",
			Usage: " generate testing accounts",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `FILE` used to sign requests",
		},
		cli.StringFlag{
			Name:   "password, P",
			Value:  "",
			Usage:  " identity `PASSWORD`, prompted for if needed and not given",
			EnvVar: "CREATURE_PASSWORD",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new identity file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*new identity `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "register",
			Usage:     "register a new creature owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*price `NUMBER` must be positive",
				},
			}, identifierFlags...),
			Action: runRegister,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a creature to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the creature `ACCOUNT`",
				},
			}, identifierFlags...),
			Action: runTransfer,
		},
		{
			Name:      "get",
			Usage:     "display a creature",
			ArgsUsage: "\n   (* = required)",
			Flags:     identifierFlags,
			Action:    runGet,
		},
		{
			Name:      "held",
			Usage:     "list creatures held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` default is the identity account",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runHeld,
		},
		{
			Name:   "info",
			Usage:  "display creatured status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display creature-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		verbose := c.GlobalBool("verbose")
		connect := c.GlobalString("connect")

		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "connect: %q\n", connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect:  connect,
				useTLS:   c.GlobalBool("tls"),
				testnet:  c.GlobalBool("testnet"),
				verbose:  verbose,
				password: c.GlobalString("password"),
				e:        c.App.ErrWriter,
				w:        c.App.Writer,
			},
		}
		return nil
	}

	return app
}
