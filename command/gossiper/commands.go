// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/rymnc/fuel-gossiper/address"
	"github.com/rymnc/fuel-gossiper/keypair"
	"github.com/rymnc/fuel-gossiper/peerlist"
)

// separate the command from the peer addresses, no command or a
// leading address means start
func splitCommand(arguments []string) (string, []string) {
	if 0 == len(arguments) || strings.HasPrefix(arguments[0], "/") {
		return "start", arguments
	}
	return arguments[0], arguments[1:]
}

// setup command handler
//
// commands that need neither the configuration file nor the
// identity, returns true if the command was completed
func processSetupCommand(program string, command string) bool {
	switch command {
	case "gen-identity", "id":
		secret, identity, err := keypair.Generate()
		if nil != err {
			exitwithstatus.Message("generate identity error: %s", err)
		}
		fmt.Printf("%s=%s\n", keypair.EnvironmentVariable, secret)
		fmt.Printf("peer id: %s\n", identity)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  gen-identity               (id)     - create a new secret for the %s environment variable\n", keypair.EnvironmentVariable)
		fmt.Printf("                                        and display its peer id\n")
		fmt.Printf("\n")

		fmt.Printf("  start [PEER...]            (run)    - run the relay, same as no arguments\n")
		fmt.Printf("                                        each PEER replaces the compiled in reserved nodes\n")
		fmt.Printf("                                        e.g. /dns/host/tcp/30333/p2p/16Uiu2…\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test [PEER...]      (cfg)    - just check the configuration, peers and identity\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}
	return true
}

// configuration command handler
//
// commands that check the configuration without starting anything,
// returns true if the command was completed
func processConfigCommand(command string, peers []string, theConfiguration *Configuration) bool {
	switch command {
	case "config-test", "cfg":
	default:
		return false
	}

	fmt.Printf("configuration: ok\n")
	fmt.Printf("%s\n", jsonify(theConfiguration))

	nodes, err := peerlist.Resolve(peerlist.Arguments(peers), nil)
	if nil != err {
		exitwithstatus.Message("reserved nodes error: %s", err)
	}
	fmt.Printf("reserved nodes:\n")
	for _, s := range address.Strings(nodes) {
		fmt.Printf("  %s\n", s)
	}

	identity, err := keypair.FromEnvironment(keypair.EnvironmentVariable)
	if nil != err {
		exitwithstatus.Message("identity error: %s", err)
	}
	fmt.Printf("peer id: %s\n", identity)
	return true
}
