// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package supervisor - the loop that bridges transaction submission
// and engine events while tracking the highest known block height
package supervisor

import (
	"github.com/bitmark-inc/logger"

	"github.com/rymnc/fuel-gossiper/gossip"
)

// State - of the loop
type State int

// loop states, ShuttingDown is terminal
const (
	Running State = iota
	ShuttingDown
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	default:
		return "unknown"
	}
}

// Supervisor - drives one engine
type Supervisor struct {
	log         *logger.L
	engine      gossip.Engine
	submissions <-chan gossip.Transaction
	done        chan struct{}
}

// New - a nil submissions channel means no transactions are accepted
func New(engine gossip.Engine, submissions <-chan gossip.Transaction, log *logger.L) *Supervisor {
	return &Supervisor{
		log:         log,
		engine:      engine,
		submissions: submissions,
		done:        make(chan struct{}),
	}
}

// Done - closed once Run has returned
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Run - the loop, implements background.Process
//
// shutdown is always checked before any ready submission or event is
// handled, so no further work is done once it is closed
func (s *Supervisor) Run(args interface{}, shutdown <-chan struct{}) {
	defer close(s.done)

	log := s.log
	log.Info("starting…")

	height := HeightState{}
	events := s.engine.Events()
	submissions := s.submissions
	state := Running

loop:
	for Running == state {
		if interrupted(shutdown) {
			state = ShuttingDown
			break loop
		}

		select {
		case <-shutdown:
			state = ShuttingDown

		case tx, ok := <-submissions:
			if interrupted(shutdown) {
				state = ShuttingDown
				break loop
			}
			if !ok {
				log.Info("submission queue closed")
				submissions = nil
				continue loop
			}
			s.publish(tx)

		case event, ok := <-events:
			if interrupted(shutdown) {
				state = ShuttingDown
				break loop
			}
			if !ok {
				log.Warn("engine event stream closed")
				events = nil
				continue loop
			}
			s.process(&height, event)
		}
	}

	log.Infof("%s at block height: %d", state, height.Highest())
	log.Flush()
}

func (s *Supervisor) publish(tx gossip.Transaction) {
	err := s.engine.Publish(gossip.BroadcastRequest{
		Kind:        gossip.NewTransaction,
		Transaction: tx,
	})
	if nil != err {
		s.log.Errorf("transaction of %d bytes: %s", len(tx), err)
		return
	}
	s.log.Debugf("published transaction of %d bytes", len(tx))
}

func (s *Supervisor) process(height *HeightState, event gossip.Event) {
	switch event.Kind {
	case gossip.PeerInfoUpdated:
		if !height.Observe(event.Height) {
			return
		}
		s.log.Infof("new block height: %d  from: %s", event.Height, event.Peer.ShortString())
		s.engine.UpdateLocalHeight(event.Height)

	default:
		s.log.Debugf("%s: %s", event.Kind, event.Peer.ShortString())
	}
}

// non-blocking
func interrupted(shutdown <-chan struct{}) bool {
	select {
	case <-shutdown:
		return true
	default:
		return false
	}
}
