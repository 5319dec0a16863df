// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package relay - set up and run a relay node
//
// the command line program and an embedding program share one
// pipeline: resolve the reserved peers, derive the identity, assemble
// the configuration, then start the engine and its supervisor
package relay

import (
	"context"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/rymnc/fuel-gossiper/anchor"
	"github.com/rymnc/fuel-gossiper/background"
	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/gossip"
	"github.com/rymnc/fuel-gossiper/keypair"
	"github.com/rymnc/fuel-gossiper/nodeconfig"
	"github.com/rymnc/fuel-gossiper/p2p"
	"github.com/rymnc/fuel-gossiper/peerlist"
	"github.com/rymnc/fuel-gossiper/supervisor"
)

// Mode - how transactions reach the node
type Mode int

// modes
const (
	CLI Mode = iota // no submissions
	API             // SubmitTransaction accepted
)

func (m Mode) String() string {
	switch m {
	case CLI:
		return "cli"
	case API:
		return "api"
	default:
		return "unknown"
	}
}

// Setup - the configuration from a peer source and a hex secret
func Setup(source peerlist.Source, secret string, parameters nodeconfig.Parameters) (*nodeconfig.Config, error) {
	return setup(source, parameters, func() (*keypair.Identity, error) {
		return keypair.Derive(secret)
	})
}

// SetupFromEnvironment - as Setup with the secret read from KEYPAIR
func SetupFromEnvironment(source peerlist.Source, parameters nodeconfig.Parameters) (*nodeconfig.Config, error) {
	return setup(source, parameters, func() (*keypair.Identity, error) {
		return keypair.FromEnvironment(keypair.EnvironmentVariable)
	})
}

func setup(source peerlist.Source, parameters nodeconfig.Parameters, identity func() (*keypair.Identity, error)) (*nodeconfig.Config, error) {
	log := logger.New("relay")

	reserved, err := peerlist.Resolve(source, logger.New("peerlist"))
	if nil != err {
		return nil, err
	}

	id, err := identity()
	if nil != err {
		log.Criticalf("identity: %s", err)
		return nil, err
	}

	config, err := nodeconfig.Assemble(anchor.GenesisConfig(), reserved, id, parameters)
	if nil != err {
		log.Criticalf("configuration: %s", err)
		return nil, err
	}

	log.Infof("peer id: %s", id)
	return config, nil
}

// Service - a running relay
type Service struct {
	log         *logger.L
	engine      gossip.Engine
	supervisor  *supervisor.Supervisor
	submissions chan gossip.Transaction
	background  *background.T
	stopOnce    sync.Once
	peerID      string
}

// Start - create and start the network engine then the supervisor
func Start(ctx context.Context, config *nodeconfig.Config, mode Mode) (*Service, error) {
	if nil == config {
		return nil, fault.WithItem(fault.InvalidConfiguration, "config", fault.NotInitialised)
	}

	engine, err := p2p.New(config, logger.New("p2p"))
	if nil != err {
		return nil, err
	}

	return start(ctx, config, mode, engine)
}

func start(ctx context.Context, config *nodeconfig.Config, mode Mode, engine gossip.Engine) (*Service, error) {
	log := logger.New("relay")

	if err := engine.Start(ctx); nil != err {
		log.Criticalf("engine start: %s", err)
		engine.Stop()
		return nil, err
	}

	var submissions chan gossip.Transaction
	if API == mode {
		submissions = make(chan gossip.Transaction, config.SubmissionQueueSize)
	}

	s := &Service{
		log:         log,
		engine:      engine,
		supervisor:  supervisor.New(engine, submissions, logger.New("supervisor")),
		submissions: submissions,
		peerID:      config.Identity.String(),
	}
	s.background = background.Start(background.Processes{s.supervisor}, nil)

	log.Infof("started in %s mode  peer id: %s", mode, s.peerID)
	return s, nil
}

// SubmitTransaction - queue a transaction for publishing
//
// blocks while the queue is full until there is space, the service
// terminates or the context is done
func (s *Service) SubmitTransaction(ctx context.Context, tx gossip.Transaction) error {
	if nil == s.submissions {
		return fault.WithItem(fault.PublishFailure, "submission", fault.NotInitialised)
	}

	done := s.supervisor.Done()
	select {
	case <-done:
		return fault.ServiceTerminated
	default:
	}

	item := make(gossip.Transaction, len(tx))
	copy(item, tx)

	select {
	case s.submissions <- item:
		return nil
	case <-done:
		return fault.ServiceTerminated
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done - closed once the supervisor has stopped
func (s *Service) Done() <-chan struct{} {
	return s.supervisor.Done()
}

// Stop - stop the supervisor then the engine
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		s.log.Info("stopping…")
		s.background.Stop()
		s.engine.Stop()
		s.log.Info("stopped")
		s.log.Flush()
	})
}

// PeerID - base58 form of the node's peer id
func (s *Service) PeerID() string {
	return s.peerID
}
