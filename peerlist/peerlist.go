// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peerlist - choose the reserved peers of the node
//
// The compiled in mainnet peers are used unless the operator or an
// embedding program supplies its own list.
package peerlist

import (
	"github.com/bitmark-inc/logger"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/rymnc/fuel-gossiper/address"
	"github.com/rymnc/fuel-gossiper/anchor"
)

// Source - somewhere override addresses can come from
type Source interface {
	Name() string
	Addresses() []string
}

// Arguments - positional command line arguments
type Arguments []string

// Name - for log messages
func (Arguments) Name() string { return "command line" }

// Addresses - the raw argument strings
func (a Arguments) Addresses() []string { return a }

// Embedded - addresses handed over by a program using the relay as a library
type Embedded []string

// Name - for log messages
func (Embedded) Name() string { return "embedding program" }

// Addresses - the raw address strings
func (e Embedded) Addresses() []string { return e }

// None - no override, the compiled in peers apply
type None struct{}

// Name - for log messages
func (None) Name() string { return "none" }

// Addresses - always empty
func (None) Addresses() []string { return nil }

// Resolve - the reserved peer set
//
// an empty override yields the compiled in list; otherwise every
// entry must parse or no list is returned
func Resolve(source Source, log *logger.L) ([]ma.Multiaddr, error) {
	var items []string
	if nil != source {
		items = source.Addresses()
	}

	if 0 == len(items) {
		nodes := anchor.ReservedNodes()
		if nil != log {
			log.Debugf("using %d compiled in reserved nodes", len(nodes))
		}
		return nodes, nil
	}

	nodes, err := address.ParseAll(items)
	if nil != err {
		if nil != log {
			log.Errorf("reserved nodes from %s: %s", source.Name(), err)
		}
		return nil, err
	}

	if nil != log {
		log.Infof("reserved nodes overridden from %s: %s", source.Name(), address.Display(nodes))
	}
	return nodes, nil
}
