// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"context"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	cache "github.com/patrickmn/go-cache"

	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/gossip"
)

// Publish - gossip a transaction
func (n *Node) Publish(request gossip.BroadcastRequest) error {
	kind := request.Kind.String()

	if !n.started {
		return fault.WithItem(fault.PublishFailure, kind, fault.NotInitialised)
	}
	if gossip.NewTransaction != request.Kind {
		return fault.WithItem(fault.PublishFailure, kind, fault.UnknownMessage)
	}
	if len(request.Transaction) > n.config.MaxBlockSize {
		return fault.WithItem(fault.PublishFailure, kind, fault.MessageTooLarge)
	}
	if !n.limiter.Allow() {
		return fault.WithItem(fault.PublishFailure, kind, fault.RateLimiting)
	}

	packed, err := gossip.PackTransaction(n.config.NetworkName, request.Transaction)
	if nil != err {
		return fault.WithItem(fault.PublishFailure, kind, err)
	}
	if err := n.pubsub.Publish(n.topics.transactions, packed); nil != err {
		return fault.WithItem(fault.PublishFailure, kind, err)
	}
	n.traffic.Published.Increment()
	return nil
}

// subscriber - turn one topic's messages into events
type subscriber struct {
	node         *Node
	subscription *pubsub.Subscription
}

func newSubscriber(n *Node, s *pubsub.Subscription) *subscriber {
	return &subscriber{
		node:         n,
		subscription: s,
	}
}

func (s *subscriber) Run(args interface{}, shutdown <-chan struct{}) {
	n := s.node
	log := n.log
	topic := s.subscription.Topic()
	log.Infof("subscribed: %s", topic)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		msg, err := s.subscription.Next(ctx)
		if nil != err {
			if nil == ctx.Err() {
				log.Errorf("topic: %s  error: %s", topic, err)
			}
			break
		}
		n.receive(msg)
	}

	s.subscription.Cancel()
	log.Infof("unsubscribed: %s", topic)
}

func (n *Node) receive(msg *pubsub.Message) {
	from := msg.GetFrom()
	if err := from.Validate(); nil != err {
		n.log.Debugf("invalid sender: %s", err)
		return
	}
	if from == n.ID() {
		return
	}

	e, err := gossip.Unpack(n.config.NetworkName, msg.Data)
	if nil != err {
		n.log.Debugf("from: %s  error: %s", from.ShortString(), err)
		return
	}

	switch gossip.MessageKind(e.Kind) {
	case gossip.Heartbeat:
		height := gossip.Height(e.Height)
		n.heights.Set(string(from), height, cache.DefaultExpiration)
		n.traffic.Heartbeat.Increment()
		n.emit(gossip.Event{
			Kind:   gossip.PeerInfoUpdated,
			Peer:   from,
			Height: height,
		})

	case gossip.NewTransaction:
		if len(e.Payload) > n.config.MaxBlockSize {
			n.log.Warnf("from: %s  transaction of %d bytes: %s", from.ShortString(), len(e.Payload), fault.MessageTooLarge)
			return
		}
		n.traffic.Received.Increment()
		n.emit(gossip.Event{
			Kind: gossip.TransactionReceived,
			Peer: from,
			Data: e.Payload,
		})
	}
}
