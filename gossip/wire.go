// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gossip

import (
	"fmt"

	"github.com/gogo/protobuf/proto"

	"github.com/rymnc/fuel-gossiper/fault"
)

// Envelope - every gossip payload travels in one of these
type Envelope struct {
	Network string `protobuf:"bytes,1,opt,name=network,proto3" json:"network,omitempty"`
	Kind    uint32 `protobuf:"varint,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Height  uint32 `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Payload []byte `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *Envelope) Reset()         { *m = Envelope{} }
func (m *Envelope) String() string { return proto.CompactTextString(m) }
func (*Envelope) ProtoMessage()    {}

// RequestKind - type of a request/response query
type RequestKind uint32

// query kinds
const (
	RequestTransactions RequestKind = iota + 1
	RequestHeaders
)

// Request - a query from a peer
type Request struct {
	Kind  uint32 `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Start uint32 `protobuf:"varint,2,opt,name=start,proto3" json:"start,omitempty"`
	Count uint32 `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *Request) Reset()         { *m = Request{} }
func (m *Request) String() string { return proto.CompactTextString(m) }
func (*Request) ProtoMessage()    {}

// Response - reply to a query
type Response struct {
	Kind  uint32   `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Error string   `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	Items [][]byte `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *Response) Reset()         { *m = Response{} }
func (m *Response) String() string { return proto.CompactTextString(m) }
func (*Response) ProtoMessage()    {}

// PackTransaction - encode a transaction for gossip
func PackTransaction(network string, tx Transaction) ([]byte, error) {
	return proto.Marshal(&Envelope{
		Network: network,
		Kind:    uint32(NewTransaction),
		Payload: tx,
	})
}

// PackHeartbeat - encode a height announcement
func PackHeartbeat(network string, height Height) ([]byte, error) {
	return proto.Marshal(&Envelope{
		Network: network,
		Kind:    uint32(Heartbeat),
		Height:  uint32(height),
	})
}

// Unpack - decode an envelope and check it belongs to the network
func Unpack(network string, packed []byte) (*Envelope, error) {
	e := &Envelope{}
	if err := proto.Unmarshal(packed, e); nil != err {
		return nil, err
	}
	if network != e.Network {
		return nil, fault.WithItem(fault.UnknownMessage, e.Network, fmt.Errorf("expected network: %q", network))
	}
	switch MessageKind(e.Kind) {
	case NewTransaction, Heartbeat:
	default:
		return nil, fault.WithItem(fault.UnknownMessage, MessageKind(e.Kind).String(), fmt.Errorf("network: %q", network))
	}
	return e, nil
}
