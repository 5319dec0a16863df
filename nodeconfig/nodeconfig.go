// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nodeconfig - assemble the complete configuration handed to
// the network engine
package nodeconfig

import (
	"fmt"
	"time"

	ma "github.com/multiformats/go-multiaddr"

	"github.com/rymnc/fuel-gossiper/anchor"
	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/keypair"
)

// defaults
const (
	DefaultNetworkName               = "Ignition"
	DefaultMaxBlockSize              = 18 * 1024 * 1024
	DefaultMaxTransactionsPerRequest = 0
	DefaultMaxHeadersPerRequest      = 0
	DefaultMaxConnectionsPerPeer     = 0
	DefaultMaxPeerConnections        = 50
	DefaultConnectionKeepAlive       = 60 * time.Second
	DefaultHeartbeatInterval         = 2 * time.Second
	DefaultListenPort                = 9099
	DefaultReservedNodesOnly         = true
	DefaultDiscoveryEnabled          = true
	DefaultPublishRate               = 0
	DefaultPublishBurst              = 1
	DefaultSubmissionQueueSize       = 65536
)

// Parameters - the tunable scalar values
type Parameters struct {
	NetworkName string

	// largest gossip payload and request/response message
	MaxBlockSize int

	// ceilings on the items served in one request, zero serves none
	MaxTransactionsPerRequest int
	MaxHeadersPerRequest      int

	// simultaneous connections to one peer, zero is unbounded
	MaxConnectionsPerPeer int

	// connection manager high water mark
	MaxPeerConnections int

	ConnectionKeepAlive time.Duration
	HeartbeatInterval   time.Duration
	ListenPort          int

	ReservedNodesOnly bool
	DiscoveryEnabled  bool

	// transactions per second, zero is unlimited
	PublishRate  float64
	PublishBurst int

	SubmissionQueueSize int
}

// DefaultParameters - the documented defaults
func DefaultParameters() Parameters {
	return Parameters{
		NetworkName:               DefaultNetworkName,
		MaxBlockSize:              DefaultMaxBlockSize,
		MaxTransactionsPerRequest: DefaultMaxTransactionsPerRequest,
		MaxHeadersPerRequest:      DefaultMaxHeadersPerRequest,
		MaxConnectionsPerPeer:     DefaultMaxConnectionsPerPeer,
		MaxPeerConnections:        DefaultMaxPeerConnections,
		ConnectionKeepAlive:       DefaultConnectionKeepAlive,
		HeartbeatInterval:         DefaultHeartbeatInterval,
		ListenPort:                DefaultListenPort,
		ReservedNodesOnly:         DefaultReservedNodesOnly,
		DiscoveryEnabled:          DefaultDiscoveryEnabled,
		PublishRate:               DefaultPublishRate,
		PublishBurst:              DefaultPublishBurst,
		SubmissionQueueSize:       DefaultSubmissionQueueSize,
	}
}

// Config - everything the engine needs, built once at start up
type Config struct {
	Parameters

	Genesis  anchor.TrustAnchor
	Reserved []ma.Multiaddr
	Identity *keypair.Identity
}

// Assemble - check every field and build the configuration
func Assemble(genesis anchor.TrustAnchor, reserved []ma.Multiaddr, identity *keypair.Identity, parameters Parameters) (*Config, error) {
	if nil == identity {
		return nil, invalid("identity", "missing")
	}
	if parameters.ReservedNodesOnly && 0 == len(reserved) {
		return nil, invalid("reserved", "empty in reserved nodes only mode")
	}
	for i, addr := range reserved {
		if nil == addr {
			return nil, invalid("reserved", fmt.Sprintf("entry %d is nil", i))
		}
	}

	if err := parameters.Validate(); nil != err {
		return nil, err
	}

	peers := make([]ma.Multiaddr, len(reserved))
	copy(peers, reserved)

	return &Config{
		Parameters: parameters,
		Genesis:    genesis,
		Reserved:   peers,
		Identity:   identity,
	}, nil
}

// Validate - range check the scalar values
func (p Parameters) Validate() error {
	switch {
	case "" == p.NetworkName:
		return invalid("network_name", "empty")
	case p.MaxBlockSize <= 0:
		return invalid("max_block_size", "must be positive")
	case p.MaxTransactionsPerRequest < 0:
		return invalid("max_transactions_per_request", "negative")
	case p.MaxHeadersPerRequest < 0:
		return invalid("max_headers_per_request", "negative")
	case p.MaxConnectionsPerPeer < 0:
		return invalid("max_connections_per_peer", "negative")
	case p.MaxPeerConnections <= 0:
		return invalid("max_peer_connections", "must be positive")
	case p.ConnectionKeepAlive <= 0:
		return invalid("connection_keep_alive", "must be positive")
	case p.HeartbeatInterval <= 0:
		return invalid("heartbeat_interval", "must be positive")
	case p.ListenPort < 1 || p.ListenPort > 65535:
		return fault.WithItem(fault.InvalidConfiguration, "listen_port", fault.InvalidPortNumber)
	case p.PublishRate < 0:
		return invalid("publish_rate", "negative")
	case p.PublishRate > 0 && p.PublishBurst <= 0:
		return invalid("publish_burst", "must be positive when rate limited")
	case p.SubmissionQueueSize <= 0:
		return invalid("submission_queue_size", "must be positive")
	}
	return nil
}

func invalid(field string, reason string) error {
	return fault.WithItem(fault.InvalidConfiguration, field, fault.GenericError(reason))
}
