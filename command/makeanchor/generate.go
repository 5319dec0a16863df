// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/rymnc/fuel-gossiper/anchor"
)

const (
	genesisFile  = "genesis_generated.go"
	reservedFile = "reserved_generated.go"
)

type outputFile struct {
	name string
	data []byte
}

// read and verify the source, then render both files in memory and
// only write them once everything succeeded
func generate(opts options) error {
	source, err := anchor.ReadSource(opts.source)
	if nil != err {
		return err
	}

	genesis, nodes, err := source.Build()
	if nil != err {
		return err
	}

	sourceName := filepath.Base(opts.source)

	genesisData, err := renderGenesis(opts.packageName, sourceName, genesis)
	if nil != err {
		return err
	}
	reservedData, err := renderReserved(opts.packageName, sourceName, nodes)
	if nil != err {
		return err
	}

	return writeAll(opts.output, []outputFile{
		{name: genesisFile, data: genesisData},
		{name: reservedFile, data: reservedData},
	})
}

// write temporaries beside the targets then rename them all
func writeAll(directory string, files []outputFile) error {
	temporaries := make([]string, 0, len(files))
	defer func() {
		for _, t := range temporaries {
			os.Remove(t)
		}
	}()

	for _, f := range files {
		tmp, err := ioutil.TempFile(directory, "."+f.name+".")
		if nil != err {
			return err
		}
		temporaries = append(temporaries, tmp.Name())

		_, err = tmp.Write(f.data)
		if nil == err {
			err = tmp.Chmod(0644)
		}
		if closeErr := tmp.Close(); nil == err {
			err = closeErr
		}
		if nil != err {
			return fmt.Errorf("write: %q  error: %s", f.name, err)
		}
	}

	for i, f := range files {
		if err := os.Rename(temporaries[i], filepath.Join(directory, f.name)); nil != err {
			return err
		}
	}
	temporaries = temporaries[:0]
	return nil
}
