// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gossip - the boundary between the relay core and the
// network engine
package gossip

import (
	"context"
	"fmt"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
)

//go:generate mockgen -source=gossip.go -destination=mocks/mock_engine.go -package=mocks

// Height - a block height
type Height uint32

// Transaction - an encoded transaction, opaque to the relay
type Transaction []byte

// MessageKind - type of an outbound message
type MessageKind int

// outbound message kinds
const (
	NewTransaction MessageKind = iota + 1
	Heartbeat
)

func (k MessageKind) String() string {
	switch k {
	case NewTransaction:
		return "new transaction"
	case Heartbeat:
		return "heartbeat"
	default:
		return fmt.Sprintf("message kind %d", int(k))
	}
}

// BroadcastRequest - a message to gossip to the network
type BroadcastRequest struct {
	Kind        MessageKind
	Transaction Transaction
}

// EventKind - type of an engine event
type EventKind int

// engine events
const (
	PeerConnected EventKind = iota + 1
	PeerDisconnected
	PeerInfoUpdated
	TransactionReceived
)

func (k EventKind) String() string {
	switch k {
	case PeerConnected:
		return "peer connected"
	case PeerDisconnected:
		return "peer disconnected"
	case PeerInfoUpdated:
		return "peer info updated"
	case TransactionReceived:
		return "transaction received"
	default:
		return fmt.Sprintf("event kind %d", int(k))
	}
}

// Event - something the engine observed
//
// Height is only meaningful for PeerInfoUpdated and Data only for
// TransactionReceived
type Event struct {
	Kind   EventKind
	Peer   peerlib.ID
	Height Height
	Data   []byte
}

// Engine - the network engine as seen by the relay
type Engine interface {
	// Start - begin networking, the events channel is valid afterwards
	Start(ctx context.Context) error

	// Events - closed when the engine stops
	Events() <-chan Event

	Publish(request BroadcastRequest) error
	UpdateLocalHeight(height Height)
	Stop()
}
