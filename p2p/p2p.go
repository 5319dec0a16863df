// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package p2p - the libp2p network engine of the relay
package p2p

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/libp2p/go-libp2p-core/host"
	peerlib "github.com/libp2p/go-libp2p-core/peer"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	mdns "github.com/libp2p/go-libp2p/p2p/discovery"
	ma "github.com/multiformats/go-multiaddr"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/rymnc/fuel-gossiper/address"
	"github.com/rymnc/fuel-gossiper/background"
	"github.com/rymnc/fuel-gossiper/counter"
	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/gossip"
	"github.com/rymnc/fuel-gossiper/nodeconfig"
)

// const
const (
	protocolVersion = "0.1.0"

	eventQueueSize = 1024

	connectInterval = 30 * time.Second
	connectTimeout  = 15 * time.Second

	peerHeightExpiry = 5 * time.Minute
	peerHeightPurge  = time.Minute

	mdnsInterval   = 10 * time.Second
	mdnsServiceTag = "fuel-gossiper"
)

var _ gossip.Engine = (*Node)(nil)

// topic and protocol names of one network
type topics struct {
	transactions    string
	heartbeat       string
	requestResponse string
}

func newTopics(network string) topics {
	return topics{
		transactions:    fmt.Sprintf("/%s/new_tx/%s", network, protocolVersion),
		heartbeat:       fmt.Sprintf("/%s/heartbeat/%s", network, protocolVersion),
		requestResponse: fmt.Sprintf("/%s/req_res/%s", network, protocolVersion),
	}
}

// Node - a network engine
type Node struct {
	log    *logger.L
	config *nodeconfig.Config
	topics topics

	host     host.Host
	pubsub   *pubsub.PubSub
	discover mdns.Service
	resolver *resolver

	// peer id → addresses, fixed at construction
	reserved map[peerlib.ID][]ma.Multiaddr

	limiter *rate.Limiter
	heights *cache.Cache
	traffic counter.Traffic

	// latest wins, capacity one
	localHeight chan gossip.Height

	eventLock    sync.Mutex
	events       chan gossip.Event
	eventsClosed bool

	cancel     context.CancelFunc
	background *background.T
	started    bool
	stopOnce   sync.Once
}

// New - create the host and bind the listening port
func New(config *nodeconfig.Config, log *logger.L) (*Node, error) {
	return newNode(config, log, listenAddresses(config.ListenPort))
}

func newNode(config *nodeconfig.Config, log *logger.L, listen []string) (*Node, error) {
	if nil == config {
		return nil, fault.WithItem(fault.InvalidConfiguration, "config", fault.NotInitialised)
	}
	if nil == log {
		log = logger.New("p2p")
	}

	reserved := make(map[peerlib.ID][]ma.Multiaddr)
	if 0 != len(config.Reserved) {
		infos, err := address.AddrInfos(config.Reserved)
		if nil != err {
			return nil, err
		}
		for _, info := range infos {
			reserved[info.ID] = info.Addrs
		}
	}

	n := &Node{
		log:         log,
		config:      config,
		topics:      newTopics(config.NetworkName),
		resolver:    newResolver(log),
		reserved:    reserved,
		limiter:     newLimiter(config.PublishRate, config.PublishBurst),
		heights:     cache.New(peerHeightExpiry, peerHeightPurge),
		localHeight: make(chan gossip.Height, 1),
		events:      make(chan gossip.Event, eventQueueSize),
	}

	h, err := n.newHost(listen)
	if nil != err {
		return nil, err
	}
	n.host = h

	return n, nil
}

// Start - join the gossip topics and begin connecting
func (n *Node) Start(ctx context.Context) error {
	if n.started {
		return fault.AlreadyInitialised
	}

	ctx, cancel := context.WithCancel(ctx)

	ps, err := pubsub.NewGossipSub(ctx, n.host)
	if nil != err {
		cancel()
		return err
	}
	n.pubsub = ps

	transactions, err := ps.Subscribe(n.topics.transactions)
	if nil != err {
		cancel()
		return err
	}
	heartbeats, err := ps.Subscribe(n.topics.heartbeat)
	if nil != err {
		cancel()
		return err
	}

	n.cancel = cancel
	n.monitor()
	n.listen()

	if n.config.DiscoveryEnabled {
		n.startDiscovery(ctx)
	}

	processes := background.Processes{
		newSubscriber(n, transactions),
		newSubscriber(n, heartbeats),
		&heartbeat{node: n},
		&connector{node: n},
	}
	n.background = background.Start(processes, n.log)
	n.started = true

	n.log.Infof("listening: %s", address.Display(n.Addrs()))
	n.log.Infof("started: %s  reserved peers: %d  reserved only: %t", n.ID().Pretty(), len(n.reserved), n.config.ReservedNodesOnly)
	return nil
}

// Stop - shut down, the events channel is closed on return
func (n *Node) Stop() {
	n.stopOnce.Do(func() {
		n.log.Info("shutting down…")

		n.background.Stop()
		if nil != n.discover {
			if err := n.discover.Close(); nil != err {
				n.log.Warnf("mdns close: %s", err)
			}
		}
		if nil != n.cancel {
			n.cancel()
		}
		if err := n.host.Close(); nil != err {
			n.log.Warnf("host close: %s", err)
		}

		n.eventLock.Lock()
		n.eventsClosed = true
		close(n.events)
		n.eventLock.Unlock()

		n.log.Infof("stopped  %s", n.Traffic())
		n.log.Flush()
	})
}

// Events - engine events, closed by Stop
func (n *Node) Events() <-chan gossip.Event {
	return n.events
}

// ID - this node's peer id
func (n *Node) ID() peerlib.ID {
	return n.host.ID()
}

// Addrs - full listening addresses including the peer id
func (n *Node) Addrs() []ma.Multiaddr {
	self, err := ma.NewComponent(ma.ProtocolWithCode(ma.P_P2P).Name, peerlib.IDB58Encode(n.ID()))
	fault.PanicIfError("p2p: peer id component", err)
	addrs := n.host.Addrs()
	full := make([]ma.Multiaddr, 0, len(addrs))
	for _, a := range addrs {
		full = append(full, a.Encapsulate(self))
	}
	return full
}

// last height announced by each peer still in the table
func (n *Node) peerHeights() map[peerlib.ID]gossip.Height {
	items := n.heights.Items()
	heights := make(map[peerlib.ID]gossip.Height, len(items))
	for key, item := range items {
		if h, ok := item.Object.(gossip.Height); ok {
			heights[peerlib.ID(key)] = h
		}
	}
	return heights
}

// non-blocking, an event is dropped when the queue is full
func (n *Node) emit(event gossip.Event) {
	n.eventLock.Lock()
	defer n.eventLock.Unlock()

	if n.eventsClosed {
		return
	}
	select {
	case n.events <- event:
	default:
		n.traffic.Dropped.Increment()
		n.log.Warnf("event queue full, dropped: %s  peer: %s", event.Kind, event.Peer.ShortString())
	}
}

// Traffic - counts since construction
func (n *Node) Traffic() counter.Snapshot {
	return n.traffic.Snapshot()
}

func (n *Node) isReserved(id peerlib.ID) bool {
	_, ok := n.reserved[id]
	return ok
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
