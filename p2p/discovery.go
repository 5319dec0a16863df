// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"context"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	mdns "github.com/libp2p/go-libp2p/p2p/discovery"
)

// local network discovery, failure only disables it
func (n *Node) startDiscovery(ctx context.Context) {
	service, err := mdns.NewMdnsService(ctx, n.host, mdnsInterval, mdnsServiceTag)
	if nil != err {
		n.log.Warnf("mdns disabled: %s", err)
		return
	}
	service.RegisterNotifee(n)
	n.discover = service
	n.log.Info("mdns discovery enabled")
}

// HandlePeerFound - mdns notifee
func (n *Node) HandlePeerFound(info peerlib.AddrInfo) {
	if info.ID == n.ID() {
		return
	}
	if n.config.ReservedNodesOnly && !n.isReserved(info.ID) {
		n.log.Debugf("mdns ignored non-reserved peer: %s", info.ID.ShortString())
		return
	}

	n.log.Infof("mdns found: %s", info.ID.ShortString())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := n.host.Connect(ctx, info); nil != err {
			n.log.Debugf("mdns connect: %s  error: %s", info.ID.ShortString(), err)
		}
	}()
}
