// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

type options struct {
	source      string
	output      string
	packageName string
}

func main() {
	defer exitwithstatus.Handler()

	opts := options{}

	app := cli.NewApp()
	app.Name = "makeanchor"
	app.Usage = "generate the compiled in genesis commitments and reserved nodes"
	app.Version = version
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "source, s",
			Value:       "mainnet.conf",
			Usage:       "anchor source `FILE`",
			Destination: &opts.source,
		},
		cli.StringFlag{
			Name:        "output, o",
			Value:       ".",
			Usage:       "output `DIRECTORY`",
			Destination: &opts.output,
		},
		cli.StringFlag{
			Name:        "package, p",
			Value:       "anchor",
			Usage:       "Go package `NAME` of the generated files",
			Destination: &opts.packageName,
		},
	}

	app.Action = func(c *cli.Context) error {
		if 0 != c.NArg() {
			return cli.NewExitError("unexpected arguments", 1)
		}
		return generate(opts)
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
