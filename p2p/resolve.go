// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"context"
	"net"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/miekg/dns"
	ma "github.com/multiformats/go-multiaddr"
	madns "github.com/multiformats/go-multiaddr-dns"

	"github.com/rymnc/fuel-gossiper/fault"
)

const (
	resolvConf = "/etc/resolv.conf"
	dnsTimeout = 5 * time.Second
)

// resolver - turn "/dns/" host names into ip addresses, the dns4,
// dns6 and dnsaddr forms are left to go-multiaddr-dns
type resolver struct {
	log     *logger.L
	client  *dns.Client
	servers []string
}

func newResolver(log *logger.L) *resolver {
	r := &resolver{
		log: log,
		client: &dns.Client{
			Timeout: dnsTimeout,
		},
	}

	config, err := dns.ClientConfigFromFile(resolvConf)
	if nil != err {
		log.Warnf("read: %s  error: %s", resolvConf, err)
		return r
	}
	for _, server := range config.Servers {
		r.servers = append(r.servers, net.JoinHostPort(server, config.Port))
	}
	return r
}

// Resolve - addresses with the host name replaced by each of its ips
func (r *resolver) Resolve(ctx context.Context, addr ma.Multiaddr) ([]ma.Multiaddr, error) {
	first, rest := ma.SplitFirst(addr)
	if nil == first {
		return nil, fault.NoAddress
	}

	if "dns" != first.Protocol().Name {
		if madns.Matches(addr) {
			return madns.Resolve(ctx, addr)
		}
		return []ma.Multiaddr{addr}, nil
	}

	ips, err := r.lookup(ctx, first.Value())
	if nil != err {
		return nil, err
	}

	resolved := make([]ma.Multiaddr, 0, len(ips))
	for _, ip := range ips {
		family := "ip6"
		if nil != ip.To4() {
			family = "ip4"
		}
		c, err := ma.NewComponent(family, ip.String())
		if nil != err {
			return nil, err
		}
		if nil == rest {
			resolved = append(resolved, c)
		} else {
			resolved = append(resolved, ma.Join(c, rest))
		}
	}
	return resolved, nil
}

// A and AAAA records from the first server that answers
func (r *resolver) lookup(ctx context.Context, host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); nil != ip {
		return []net.IP{ip}, nil
	}

	var lastErr error
	ips := []net.IP{}

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		m := &dns.Msg{}
		m.SetQuestion(dns.Fqdn(host), qtype)
		m.RecursionDesired = true

	servers:
		for _, server := range r.servers {
			in, _, err := r.client.ExchangeContext(ctx, m, server)
			if nil != err {
				lastErr = err
				continue servers
			}
			for _, rr := range in.Answer {
				switch a := rr.(type) {
				case *dns.A:
					ips = append(ips, a.A)
				case *dns.AAAA:
					ips = append(ips, a.AAAA)
				}
			}
			break servers
		}
	}

	if 0 == len(ips) {
		return nil, fault.WithItem(fault.NoAddress, host, lastErr)
	}
	r.log.Debugf("resolved: %s  to: %v", host, ips)
	return ips, nil
}
