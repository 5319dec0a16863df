// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	p2pnet "github.com/libp2p/go-libp2p-core/network"

	"github.com/rymnc/fuel-gossiper/gossip"
)

// monitor - apply the connection policy and report connection changes
func (n *Node) monitor() {
	n.host.Network().Notify(&p2pnet.NotifyBundle{
		ConnectedF:    n.connected,
		DisconnectedF: n.disconnected,
	})
}

func (n *Node) connected(net p2pnet.Network, conn p2pnet.Conn) {
	id := conn.RemotePeer()

	if n.config.ReservedNodesOnly && !n.isReserved(id) {
		n.traffic.Rejected.Increment()
		n.log.Debugf("reject non-reserved peer: %s  address: %s", id.ShortString(), conn.RemoteMultiaddr())
		go conn.Close()
		return
	}

	limit := n.config.MaxConnectionsPerPeer
	if limit > 0 {
		if count := len(net.ConnsToPeer(id)); count > limit {
			n.traffic.Rejected.Increment()
			n.log.Debugf("peer: %s  connections: %d  limit: %d", id.ShortString(), count, limit)
			go conn.Close()
			return
		}
	}

	n.log.Infof("connected: %s  address: %s  connections: %d", id.ShortString(), conn.RemoteMultiaddr(), len(net.Conns()))
	n.emit(gossip.Event{
		Kind: gossip.PeerConnected,
		Peer: id,
	})
}

func (n *Node) disconnected(net p2pnet.Network, conn p2pnet.Conn) {
	id := conn.RemotePeer()
	if p2pnet.Connected == net.Connectedness(id) {
		return
	}
	if n.config.ReservedNodesOnly && !n.isReserved(id) {
		return
	}

	n.heights.Delete(string(id))
	n.log.Infof("disconnected: %s  connections: %d", id.ShortString(), len(net.Conns()))
	n.emit(gossip.Event{
		Kind: gossip.PeerDisconnected,
		Peer: id,
	})
}
