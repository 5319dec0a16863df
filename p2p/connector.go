// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"context"
	"time"

	"github.com/libp2p/go-libp2p-core/network"
	peerlib "github.com/libp2p/go-libp2p-core/peer"
	"github.com/libp2p/go-libp2p-core/peerstore"
	ma "github.com/multiformats/go-multiaddr"
)

// connector - keep the reserved peers connected
type connector struct {
	node *Node
}

func (c *connector) Run(args interface{}, shutdown <-chan struct{}) {
	n := c.node
	log := n.log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	delay := time.After(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay:
			delay = time.After(connectInterval)
			c.connectAll(ctx)
		}
	}
	log.Info("connector stopped")
}

func (c *connector) connectAll(ctx context.Context) {
	n := c.node
	for id, addrs := range n.reserved {
		if nil != ctx.Err() {
			return
		}
		if id == n.ID() {
			continue
		}
		if network.Connected == n.host.Network().Connectedness(id) {
			continue
		}
		c.connect(ctx, id, addrs)
	}
}

func (c *connector) connect(ctx context.Context, id peerlib.ID, addrs []ma.Multiaddr) {
	n := c.node
	log := n.log

	resolved := make([]ma.Multiaddr, 0, len(addrs))
	for _, addr := range addrs {
		a, err := n.resolver.Resolve(ctx, addr)
		if nil != err {
			log.Warnf("resolve: %s  error: %s", addr, err)
			continue
		}
		resolved = append(resolved, a...)
	}
	if 0 == len(resolved) {
		log.Warnf("peer: %s  no usable address", id.ShortString())
		return
	}
	n.host.Peerstore().AddAddrs(id, resolved, peerstore.PermanentAddrTTL)

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	err := n.host.Connect(cctx, peerlib.AddrInfo{ID: id, Addrs: resolved})
	if nil != err {
		log.Warnf("connect: %s  error: %s", id.ShortString(), err)
		return
	}
	log.Infof("connected to reserved peer: %s", id.ShortString())
}
