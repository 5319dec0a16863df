// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"fmt"

	ggio "github.com/gogo/protobuf/io"
	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/protocol"

	"github.com/rymnc/fuel-gossiper/gossip"
)

// listen - serve the request/response protocol
//
// the relay holds no chain data so every acceptable query gets an
// empty answer; queries over the configured ceilings are refused
func (n *Node) listen() {
	n.host.SetStreamHandler(protocol.ID(n.topics.requestResponse), n.handleStream)
	n.log.Infof("serving: %s", n.topics.requestResponse)
}

func (n *Node) handleStream(stream network.Stream) {
	remote := stream.Conn().RemotePeer()

	reader := ggio.NewDelimitedReader(stream, n.config.MaxBlockSize)
	request := gossip.Request{}
	if err := reader.ReadMsg(&request); nil != err {
		n.log.Debugf("request from: %s  error: %s", remote.ShortString(), err)
		stream.Reset()
		return
	}

	response := n.answer(&request)
	if "" != response.Error {
		n.log.Debugf("request from: %s  refused: %s", remote.ShortString(), response.Error)
	}

	writer := ggio.NewDelimitedWriter(stream)
	if err := writer.WriteMsg(response); nil != err {
		n.log.Debugf("response to: %s  error: %s", remote.ShortString(), err)
		stream.Reset()
		return
	}
	stream.Close()
}

func (n *Node) answer(request *gossip.Request) *gossip.Response {
	response := &gossip.Response{
		Kind: request.Kind,
	}

	limit := 0
	switch gossip.RequestKind(request.Kind) {
	case gossip.RequestTransactions:
		limit = n.config.MaxTransactionsPerRequest
	case gossip.RequestHeaders:
		limit = n.config.MaxHeadersPerRequest
	default:
		response.Error = fmt.Sprintf("unknown request kind: %d", request.Kind)
		return response
	}

	if uint64(request.Count) > uint64(limit) {
		response.Error = fmt.Sprintf("count: %d exceeds limit: %d", request.Count, limit)
	}
	return response
}
