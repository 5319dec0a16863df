// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/rymnc/fuel-gossiper/anchor"
	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/gossip"
	"github.com/rymnc/fuel-gossiper/gossip/mocks"
	"github.com/rymnc/fuel-gossiper/keypair"
	"github.com/rymnc/fuel-gossiper/nodeconfig"
	"github.com/rymnc/fuel-gossiper/peerlist"
)

const (
	secretOne = "0x0000000000000000000000000000000000000000000000000000000000000001"
	peerOne   = "16Uiu2HAm3cuhhRL2msUuLF62KRSfneFDx94RsuouyW25Ho42cFMq"

	addrA = "/ip4/127.0.0.1/tcp/30333/p2p/16Uiu2HAkxjhwNYtwawWUexYn84MsrA9ivFWkNHmiF4hSieoNP7Jd"
	addrB = "/dns/localhost/tcp/30334/p2p/16Uiu2HAmQunK6Dd81BXh3rW2ZsszgviPgGMuHw39vv2XxbkuCfaw"
)

func testConfig(t *testing.T, queue int) *nodeconfig.Config {
	p := nodeconfig.DefaultParameters()
	p.SubmissionQueueSize = queue
	config, err := Setup(peerlist.Embedded{addrA}, secretOne, p)
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}
	return config
}

func TestMode(t *testing.T) {
	assert.Equal(t, "cli", CLI.String(), "cli")
	assert.Equal(t, "api", API.String(), "api")
	assert.Equal(t, "unknown", Mode(9).String(), "unknown")
}

func TestSetup(t *testing.T) {
	config, err := Setup(peerlist.Embedded{addrA, addrB, addrA}, secretOne, nodeconfig.DefaultParameters())
	if !assert.NoError(t, err, "setup error") {
		return
	}
	assert.Len(t, config.Reserved, 2, "reserved count")
	assert.Equal(t, peerOne, config.Identity.String(), "peer id")
	assert.Equal(t, anchor.GenesisConfig(), config.Genesis, "genesis")
	assert.Equal(t, nodeconfig.DefaultParameters(), config.Parameters, "parameters")
}

func TestSetupDefaultPeers(t *testing.T) {
	config, err := Setup(peerlist.None{}, secretOne, nodeconfig.DefaultParameters())
	if !assert.NoError(t, err, "setup error") {
		return
	}
	defaults := anchor.ReservedNodes()
	if assert.Len(t, config.Reserved, len(defaults), "reserved count") {
		for i := range defaults {
			assert.True(t, defaults[i].Equal(config.Reserved[i]), "node %d differs", i)
		}
	}
}

func TestSetupErrors(t *testing.T) {
	_, err := Setup(peerlist.Arguments{"/ip4/127.0.0.1/tcp/30333"}, secretOne, nodeconfig.DefaultParameters())
	assert.True(t, errors.Is(err, fault.InvalidPeerAddress), "peer without id: %v", err)

	_, err = Setup(peerlist.None{}, "not hex", nodeconfig.DefaultParameters())
	assert.True(t, errors.Is(err, fault.InvalidKey), "bad secret: %v", err)

	p := nodeconfig.DefaultParameters()
	p.MaxBlockSize = 0
	_, err = Setup(peerlist.None{}, secretOne, p)
	assert.True(t, errors.Is(err, fault.InvalidConfiguration), "bad parameters: %v", err)
}

func TestSetupFromEnvironment(t *testing.T) {
	saved, present := os.LookupEnv(keypair.EnvironmentVariable)
	defer func() {
		if present {
			os.Setenv(keypair.EnvironmentVariable, saved)
		} else {
			os.Unsetenv(keypair.EnvironmentVariable)
		}
	}()

	os.Unsetenv(keypair.EnvironmentVariable)
	_, err := SetupFromEnvironment(peerlist.None{}, nodeconfig.DefaultParameters())
	assert.True(t, errors.Is(err, fault.InvalidKey), "unset: %v", err)

	os.Setenv(keypair.EnvironmentVariable, secretOne)
	config, err := SetupFromEnvironment(peerlist.None{}, nodeconfig.DefaultParameters())
	if assert.NoError(t, err, "setup error") {
		assert.Equal(t, peerOne, config.Identity.String(), "peer id")
	}
}

func TestStartEngineFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockEngine(ctl)
	gomock.InOrder(
		engine.EXPECT().Start(gomock.Any()).Return(fault.AlreadyInitialised).Times(1),
		engine.EXPECT().Stop().Times(1),
	)

	s, err := start(context.Background(), testConfig(t, 1), API, engine)
	assert.Nil(t, s, "service returned")
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong error")
}

func TestSubmitAndStop(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	events := make(chan gossip.Event)
	published := make(chan struct{})

	engine := mocks.NewMockEngine(ctl)
	engine.EXPECT().Start(gomock.Any()).Return(nil).Times(1)
	engine.EXPECT().Events().Return((<-chan gossip.Event)(events)).Times(1)
	engine.EXPECT().Publish(gossip.BroadcastRequest{
		Kind:        gossip.NewTransaction,
		Transaction: gossip.Transaction{4, 5, 6},
	}).Return(nil).Times(1).Do(func(gossip.BroadcastRequest) {
		close(published)
	})
	engine.EXPECT().Stop().Times(1)

	s, err := start(context.Background(), testConfig(t, 4), API, engine)
	if !assert.NoError(t, err, "start error") {
		return
	}
	assert.Equal(t, peerOne, s.PeerID(), "peer id")

	tx := gossip.Transaction{4, 5, 6}
	assert.NoError(t, s.SubmitTransaction(context.Background(), tx), "submit error")
	tx[0] = 99
	waitFor(t, published, "publish")

	s.Stop()
	s.Stop()
	waitFor(t, s.Done(), "supervisor exit")

	err = s.SubmitTransaction(context.Background(), gossip.Transaction{1})
	assert.Equal(t, fault.ServiceTerminated, err, "submit after stop")
}

func TestSubmitBackPressure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	events := make(chan gossip.Event)
	busy := make(chan struct{}, 1)
	release := make(chan struct{})

	engine := mocks.NewMockEngine(ctl)
	engine.EXPECT().Start(gomock.Any()).Return(nil).Times(1)
	engine.EXPECT().Events().Return((<-chan gossip.Event)(events)).Times(1)
	engine.EXPECT().Publish(gomock.Any()).Return(nil).AnyTimes().Do(func(gossip.BroadcastRequest) {
		select {
		case busy <- struct{}{}:
		default:
		}
		<-release
	})
	engine.EXPECT().Stop().Times(1)

	s, err := start(context.Background(), testConfig(t, 1), API, engine)
	if !assert.NoError(t, err, "start error") {
		return
	}

	// first is taken by the loop which then blocks in publish
	assert.NoError(t, s.SubmitTransaction(context.Background(), gossip.Transaction{1}), "first")
	select {
	case <-busy:
	case <-time.After(waitLimit):
		t.Fatal("publish not reached")
	}

	// second fills the queue
	assert.NoError(t, s.SubmitTransaction(context.Background(), gossip.Transaction{2}), "second")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = s.SubmitTransaction(ctx, gossip.Transaction{3})
	assert.Equal(t, context.DeadlineExceeded, err, "full queue did not block")

	close(release)
	s.Stop()
}

func TestSubmitCLIMode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	events := make(chan gossip.Event)

	engine := mocks.NewMockEngine(ctl)
	engine.EXPECT().Start(gomock.Any()).Return(nil).Times(1)
	engine.EXPECT().Events().Return((<-chan gossip.Event)(events)).Times(1)
	engine.EXPECT().Stop().Times(1)

	s, err := start(context.Background(), testConfig(t, 1), CLI, engine)
	if !assert.NoError(t, err, "start error") {
		return
	}
	defer s.Stop()

	err = s.SubmitTransaction(context.Background(), gossip.Transaction{1})
	assert.True(t, errors.Is(err, fault.PublishFailure), "cli submission accepted: %v", err)
}
