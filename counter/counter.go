// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free event counts of the network engine
package counter

import (
	"fmt"
	"sync/atomic"
)

// Counter - a 64 bit unsigned count safe for concurrent increment
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Traffic - what the engine has done since start
type Traffic struct {
	Published Counter // transactions gossiped
	Received  Counter // transactions from peers
	Heartbeat Counter // heights from peers
	Dropped   Counter // events lost to a full queue
	Rejected  Counter // connections closed by policy
}

// Snapshot - values of a Traffic at one moment
type Snapshot struct {
	Published uint64
	Received  uint64
	Heartbeat uint64
	Dropped   uint64
	Rejected  uint64
}

// Snapshot - read every counter
func (t *Traffic) Snapshot() Snapshot {
	return Snapshot{
		Published: t.Published.Uint64(),
		Received:  t.Received.Uint64(),
		Heartbeat: t.Heartbeat.Uint64(),
		Dropped:   t.Dropped.Uint64(),
		Rejected:  t.Rejected.Uint64(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("published: %d  received: %d  heartbeats: %d  dropped: %d  rejected: %d",
		s.Published, s.Received, s.Heartbeat, s.Dropped, s.Rejected)
}
