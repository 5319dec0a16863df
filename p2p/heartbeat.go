// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"time"

	"github.com/rymnc/fuel-gossiper/gossip"
)

// UpdateLocalHeight - hand the new height to the heartbeat, an older
// value not yet taken is replaced
func (n *Node) UpdateLocalHeight(height gossip.Height) {
	for {
		select {
		case n.localHeight <- height:
			return
		default:
		}
		select {
		case <-n.localHeight:
		default:
		}
	}
}

// heartbeat - announce the local height at a fixed interval
type heartbeat struct {
	node   *Node
	height gossip.Height
}

func (hb *heartbeat) Run(args interface{}, shutdown <-chan struct{}) {
	n := hb.node
	log := n.log
	log.Infof("heartbeat every: %s", n.config.HeartbeatInterval)

	ticker := time.NewTicker(n.config.HeartbeatInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case h := <-n.localHeight:
			hb.height = h
			log.Debugf("local height: %d", h)

		case <-ticker.C:
			hb.beat()
		}
	}
	log.Info("heartbeat stopped")
}

func (hb *heartbeat) beat() {
	n := hb.node
	packed, err := gossip.PackHeartbeat(n.config.NetworkName, hb.height)
	if nil != err {
		n.log.Errorf("heartbeat pack: %s", err)
		return
	}
	if err := n.pubsub.Publish(n.topics.heartbeat, packed); nil != err {
		n.log.Warnf("heartbeat publish: %s", err)
		return
	}
	best := gossip.Height(0)
	heights := n.peerHeights()
	for _, h := range heights {
		if h > best {
			best = h
		}
	}
	n.log.Debugf("heartbeat: %d  connections: %d  peers reporting: %d  best peer height: %d  %s", hb.height, len(n.host.Network().Conns()), len(heights), best, n.Traffic())
}
