// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - peer addresses in multiaddr form
//
// A peer address names a transport, host, port and the identity of
// the remote peer, e.g.
//
//   /dns/p2p.example.net/tcp/30333/p2p/16Uiu2HAm…
//   /ip4/127.0.0.1/tcp/9099/p2p/16Uiu2HAm…
//
// the trailing peer id component is mandatory.
package address

import (
	"net"
	"strings"

	"github.com/miekg/dns"
	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"
	madns "github.com/multiformats/go-multiaddr-dns"

	"github.com/rymnc/fuel-gossiper/fault"
)

// multicodec for the generic "dns" protocol (either address family)
const dnsCode = 0x35

// longest host name in text form
const maxHostLength = 253

// register "/dns/" when the multiaddr library does not know it, it
// shares the transcoder of dns4
func init() {
	if 0 != ma.ProtocolWithName("dns").Code {
		return
	}
	p := madns.Dns4Protocol
	p.Name = "dns"
	p.Code = dnsCode
	p.VCode = ma.CodeToVarint(dnsCode)
	if err := ma.AddProtocol(p); nil != err {
		panic("address: cannot register dns protocol: " + err.Error())
	}
}

// Parse - convert the text form into a multiaddr that carries a peer id
func Parse(s string) (ma.Multiaddr, error) {
	item := strings.TrimSpace(s)
	if "" == item {
		return nil, fault.WithItem(fault.InvalidPeerAddress, s, fault.NoAddress)
	}

	addr, err := ma.NewMultiaddr(item)
	if nil != err {
		return nil, fault.WithItem(fault.InvalidPeerAddress, s, err)
	}

	if _, err := addr.ValueForProtocol(ma.P_P2P); nil != err {
		return nil, fault.WithItem(fault.InvalidPeerAddress, s, fault.MissingPeerID)
	}

	info, err := peerlib.AddrInfoFromP2pAddr(addr)
	if nil != err {
		return nil, fault.WithItem(fault.InvalidPeerAddress, s, fault.MisplacedPeerID)
	}
	if 0 == len(info.Addrs) {
		return nil, fault.WithItem(fault.InvalidPeerAddress, s, fault.MissingTransport)
	}

	if err := checkHosts(addr); nil != err {
		return nil, fault.WithItem(fault.InvalidPeerAddress, s, err)
	}

	return addr, nil
}

// every dns style component must hold a plain host name or an ip
func checkHosts(addr ma.Multiaddr) error {
	var err error
	ma.ForEach(addr, func(c ma.Component) bool {
		switch c.Protocol().Name {
		case "dns", "dns4", "dns6", "dnsaddr":
			if !validHost(c.Value()) {
				err = fault.InvalidHostName
				return false
			}
		}
		return true
	})
	return err
}

func validHost(host string) bool {
	if nil != net.ParseIP(host) {
		return true
	}
	if 0 == len(host) || len(host) > maxHostLength {
		return false
	}
	for i := 0; i < len(host); i += 1 {
		c := host[i]
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case '-' == c, '.' == c, '_' == c:
		default:
			return false
		}
	}
	_, ok := dns.IsDomainName(host)
	return ok
}

// ParseAll - parse every item, the first failure aborts the whole
// list; duplicates are removed keeping the first occurrence
func ParseAll(items []string) ([]ma.Multiaddr, error) {
	addrs := make([]ma.Multiaddr, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		addr, err := Parse(item)
		if nil != err {
			return nil, err
		}
		key := string(addr.Bytes())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// PeerID - the identity component of an address
func PeerID(addr ma.Multiaddr) (peerlib.ID, error) {
	info, err := peerlib.AddrInfoFromP2pAddr(addr)
	if nil != err {
		return "", err
	}
	return info.ID, nil
}

// AddrInfos - group addresses by peer, as required for dialling
func AddrInfos(addrs []ma.Multiaddr) ([]peerlib.AddrInfo, error) {
	if 0 == len(addrs) {
		return nil, fault.NoAddress
	}
	return peerlib.AddrInfosFromP2pAddrs(addrs...)
}

// Strings - text form of each address
func Strings(addrs []ma.Multiaddr) []string {
	s := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		s = append(s, addr.String())
	}
	return s
}

// Display - comma separated list for log messages
func Display(addrs []ma.Multiaddr) string {
	return strings.Join(Strings(addrs), ", ")
}
