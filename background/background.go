// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived processes until told to stop
package background

import (
	"sync"
)

// Process - the interface a background process implements
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels of one process
type control struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle of a started set of processes
type T struct {
	controls []control
	once     sync.Once
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	register := &T{
		controls: make([]control, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.controls[i] = control{
			shutdown: shutdown,
			finished: finished,
		}
		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - signal every process then wait for all of them to return,
// calling it more than once is harmless
func (t *T) Stop() {
	if nil == t {
		return
	}
	t.once.Do(func() {
		for _, c := range t.controls {
			close(c.shutdown)
		}
		for _, c := range t.controls {
			<-c.finished
		}
	})
}

// Finished - closed when process i has returned
func (t *T) Finished(i int) <-chan struct{} {
	return t.controls[i].finished
}
