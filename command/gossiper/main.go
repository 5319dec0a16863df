// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/peerlist"
	"github.com/rymnc/fuel-gossiper/relay"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, "version")
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, "help")
		return
	}

	command, peers := splitCommand(arguments)

	// these commands do not require the configuration
	if processSetupCommand(program, command) {
		return
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, n)
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if nil == theConfiguration.Logging.Levels {
		theConfiguration.Logging.Levels = map[string]string{}
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}
	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
	}

	// these commands perform enquiries on the configuration
	if processConfigCommand(command, peers, theConfiguration) {
		return
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.LoggerConfiguration()); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %s", jsonify(theConfiguration))

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	config, err := relay.SetupFromEnvironment(peerlist.Arguments(peers), theConfiguration.Parameters())
	if nil != err {
		log.Criticalf("setup error: %s", err)
		exitwithstatus.Message("setup error: %s", err)
	}

	// turn Signals into channel messages, before anything is started
	// so an early Ctrl-C still shuts down cleanly
	ch := notifyShutdown()
	defer signal.Stop(ch)

	service, err := relay.Start(context.Background(), config, relay.CLI)
	if nil != err {
		log.Criticalf("start error: %s", err)
		exitwithstatus.Message("start error: %s", err)
	}
	defer service.Stop()

	quiet := 0 != len(options["quiet"])
	if !quiet {
		fmt.Printf("peer id: %s\n", service.PeerID())
		fmt.Printf("\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n")
	}

	waitForShutdown(log, ch, service.Done(), quiet)

	log.Info("shutting down…")
}

// buffered so a signal during startup is kept
func notifyShutdown() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	return ch
}

// block until a signal arrives or the supervisor stops
func waitForShutdown(log *logger.L, signals <-chan os.Signal, done <-chan struct{}, quiet bool) {
	select {
	case sig := <-signals:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nCtrl-C received, shutting down...\n")
		}
	case <-done:
		log.Warn("supervisor stopped")
	}
}

func jsonify(item interface{}) string {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		return fmt.Sprintf("%+v", item)
	}
	return string(b)
}
