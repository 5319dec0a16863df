// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package anchor - the compiled in mainnet trust anchor
//
// The genesis commitments and the reserved bootstrap peers are
// written in mainnet.conf, checked by the makeanchor generator and
// turned into Go source so that nothing is parsed at start up.
// Regenerate with:
//
//   go generate ./anchor
package anchor

import (
	"fmt"

	ma "github.com/multiformats/go-multiaddr"

	"github.com/rymnc/fuel-gossiper/address"
	"github.com/rymnc/fuel-gossiper/configuration"
	"github.com/rymnc/fuel-gossiper/fault"
)

// TrustAnchor - the genesis commitments of the network
type TrustAnchor struct {
	ChainConfigHash  Digest `json:"chainConfigHash"`
	CoinsRoot        Digest `json:"coinsRoot"`
	ContractsRoot    Digest `json:"contractsRoot"`
	MessagesRoot     Digest `json:"messagesRoot"`
	TransactionsRoot Digest `json:"transactionsRoot"`
}

// GenesisSource - hex text of each commitment
type GenesisSource struct {
	ChainConfigHash  string `gluamapper:"chain_config_hash"`
	CoinsRoot        string `gluamapper:"coins_root"`
	ContractsRoot    string `gluamapper:"contracts_root"`
	MessagesRoot     string `gluamapper:"messages_root"`
	TransactionsRoot string `gluamapper:"transactions_root"`
}

// Source - the text form of the anchor read from a configuration file
type Source struct {
	Genesis       GenesisSource `gluamapper:"genesis"`
	ReservedNodes []string      `gluamapper:"reserved_nodes"`
}

// ReadSource - read an anchor source file
func ReadSource(fileName string) (*Source, error) {
	source := &Source{}
	if err := configuration.ParseConfigurationFile(fileName, source); nil != err {
		return nil, err
	}
	return source, nil
}

// Build - verify every item of the source, any error aborts the
// whole build
func (s *Source) Build() (TrustAnchor, []ma.Multiaddr, error) {
	a := TrustAnchor{}

	fields := []struct {
		name   string
		text   string
		digest *Digest
	}{
		{"chain_config_hash", s.Genesis.ChainConfigHash, &a.ChainConfigHash},
		{"coins_root", s.Genesis.CoinsRoot, &a.CoinsRoot},
		{"contracts_root", s.Genesis.ContractsRoot, &a.ContractsRoot},
		{"messages_root", s.Genesis.MessagesRoot, &a.MessagesRoot},
		{"transactions_root", s.Genesis.TransactionsRoot, &a.TransactionsRoot},
	}
	for _, f := range fields {
		d, err := DigestFromHex(f.text)
		if nil != err {
			return TrustAnchor{}, nil, fmt.Errorf("genesis.%s: %w", f.name, err)
		}
		*f.digest = d
	}

	if 0 == len(s.ReservedNodes) {
		return TrustAnchor{}, nil, fmt.Errorf("reserved_nodes: %w", fault.NoAddress)
	}
	nodes, err := address.ParseAll(s.ReservedNodes)
	if nil != err {
		return TrustAnchor{}, nil, fmt.Errorf("reserved_nodes: %w", err)
	}

	return a, nodes, nil
}
