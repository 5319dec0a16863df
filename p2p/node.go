// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"context"
	"fmt"

	libp2p "github.com/libp2p/go-libp2p"
	connmgr "github.com/libp2p/go-libp2p-connmgr"
	"github.com/libp2p/go-libp2p-core/host"
	tls "github.com/libp2p/go-libp2p-tls"
)

// listen on every interface, both address families
func listenAddresses(port int) []string {
	return []string{
		fmt.Sprintf("/ip4/0.0.0.0/tcp/%d", port),
		fmt.Sprintf("/ip6/::/tcp/%d", port),
	}
}

// newHost - libp2p host with TLS security and a connection manager
// whose grace period is the keep alive
func (n *Node) newHost(listen []string) (host.Host, error) {
	high := n.config.MaxPeerConnections
	low := high / 2
	cm := connmgr.NewConnManager(low, high, n.config.ConnectionKeepAlive)

	options := []libp2p.Option{
		libp2p.Identity(n.config.Identity.PrivateKey()),
		libp2p.Security(tls.ID, tls.New),
		libp2p.ConnectionManager(cm),
		libp2p.ListenAddrStrings(listen...),
	}
	return libp2p.New(context.Background(), options...)
}
