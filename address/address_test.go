// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rymnc/fuel-gossiper/address"
	"github.com/rymnc/fuel-gossiper/fault"
)

const (
	peerA = "16Uiu2HAkxjhwNYtwawWUexYn84MsrA9ivFWkNHmiF4hSieoNP7Jd"
	peerB = "16Uiu2HAmQunK6Dd81BXh3rW2ZsszgviPgGMuHw39vv2XxbkuCfaw"
)

func TestParseValid(t *testing.T) {
	valid := []string{
		"/ip4/127.0.0.1/tcp/30333/p2p/" + peerA,
		"/ip6/::1/tcp/30333/p2p/" + peerA,
		"/dns/p2p-mainnet.fuel.network/tcp/30336/p2p/" + peerA,
		"/dns4/localhost/tcp/9099/p2p/" + peerB,
		"  /ip4/10.0.0.1/tcp/1/p2p/" + peerB + "\n",
	}
	for i, s := range valid {
		addr, err := address.Parse(s)
		if !assert.NoError(t, err, "%d: parse error for: %q", i, s) {
			continue
		}
		id, err := address.PeerID(addr)
		assert.NoError(t, err, "%d: peer id error", i)
		assert.NotEmpty(t, id.String(), "%d: empty peer id", i)
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"not-an-address",
		"/ip4/127.0.0.1/tcp/30333",
		"/ip4/300.0.0.1/tcp/30333/p2p/" + peerA,
		"/ip4/127.0.0.1/tcp/70000/p2p/" + peerA,
		"/ip4/127.0.0.1/tcp/30333/p2p/not-base58-0OIl",
		"/dns/p2p-mainnet.fuel.network/tcp/30336",
		"/ip4/127.0.0.1/p2p/" + peerA + "/tcp/30333",
		"/p2p/" + peerA,
		"/dns/evil\nvar x = 1\n/tcp/30333/p2p/" + peerA,
		"/dns/bad host/tcp/30333/p2p/" + peerA,
		"/dns/a..b/tcp/30333/p2p/" + peerA,
	}
	for i, s := range invalid {
		addr, err := address.Parse(s)
		assert.Nil(t, addr, "%d: address returned for: %q", i, s)
		if assert.Error(t, err, "%d: accepted: %q", i, s) {
			assert.True(t, errors.Is(err, fault.InvalidPeerAddress), "%d: wrong error class: %s", i, err)
		}
	}
}

func TestParseInvalidCause(t *testing.T) {
	items := []struct {
		s     string
		cause error
	}{
		{"/ip4/127.0.0.1/tcp/30333", fault.MissingPeerID},
		{"/ip4/127.0.0.1/p2p/" + peerA + "/tcp/30333", fault.MisplacedPeerID},
		{"/p2p/" + peerA, fault.MissingTransport},
		{"/dns/evil\nhost/tcp/30333/p2p/" + peerA, fault.InvalidHostName},
	}
	for i, item := range items {
		_, err := address.Parse(item.s)
		var ie *fault.ItemError
		if assert.True(t, errors.As(err, &ie), "%d: not an item error: %v", i, err) {
			assert.Equal(t, item.s, ie.Item, "%d: item", i)
			assert.Equal(t, item.cause, ie.Cause(), "%d: cause", i)
		}
	}
}

func TestParseHostForms(t *testing.T) {
	valid := []string{
		"/dns/p2p-mainnet.fuel.network/tcp/30336/p2p/" + peerA,
		"/dns/localhost/tcp/30336/p2p/" + peerA,
		"/dns/10.0.0.1/tcp/30336/p2p/" + peerA,
		"/dns4/node-1.example.org/tcp/30336/p2p/" + peerA,
	}
	for i, s := range valid {
		_, err := address.Parse(s)
		assert.NoError(t, err, "%d: rejected: %q", i, s)
	}
}

func TestParseAllIsAtomic(t *testing.T) {
	good := "/ip4/127.0.0.1/tcp/30333/p2p/" + peerA
	addrs, err := address.ParseAll([]string{good, "bad"})
	assert.Nil(t, addrs, "partial list returned")
	assert.True(t, errors.Is(err, fault.InvalidPeerAddress), "wrong error: %v", err)

	var ie *fault.ItemError
	if assert.True(t, errors.As(err, &ie), "not an item error") {
		assert.Equal(t, "bad", ie.Item, "offending item not reported")
	}
}

func TestParseAllRemovesDuplicates(t *testing.T) {
	a := "/ip4/127.0.0.1/tcp/30333/p2p/" + peerA
	b := "/ip4/127.0.0.1/tcp/30334/p2p/" + peerB
	addrs, err := address.ParseAll([]string{a, b, a})
	assert.NoError(t, err, "parse error")
	assert.Len(t, addrs, 2, "duplicates kept")
	first, _ := address.Parse(a)
	assert.True(t, first.Equal(addrs[0]), "order not preserved")
}

func TestAddrInfos(t *testing.T) {
	addrs, err := address.ParseAll([]string{
		"/ip4/127.0.0.1/tcp/30333/p2p/" + peerA,
		"/ip4/127.0.0.2/tcp/30333/p2p/" + peerA,
		"/ip4/127.0.0.1/tcp/30334/p2p/" + peerB,
	})
	assert.NoError(t, err, "parse error")

	infos, err := address.AddrInfos(addrs)
	assert.NoError(t, err, "addr info error")
	assert.Len(t, infos, 2, "addresses not grouped by peer")

	_, err = address.AddrInfos(nil)
	assert.Equal(t, fault.NoAddress, err, "empty list accepted")
}

func TestDisplay(t *testing.T) {
	addrs, err := address.ParseAll([]string{
		"/ip4/127.0.0.1/tcp/30333/p2p/" + peerA,
		"/ip4/127.0.0.1/tcp/30334/p2p/" + peerB,
	})
	assert.NoError(t, err, "parse error")
	s := address.Display(addrs)
	assert.Contains(t, s, ", ", "no separator")
	assert.Contains(t, s, "/tcp/30334/", "second address missing")
}
