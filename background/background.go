// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived goroutines with clean shutdown
package background

// shutdown and completion channels for one process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for the started set
type T struct {
	s []shutdown
}

// Process - type signature for a background process
type Process func(args interface{}, shutdown <-chan struct{}, done chan<- struct{})

// Processes - list of processes to start
type Processes []Process

// Start - run a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := &T{
		s: make([]shutdown, len(processes)),
	}

	for i, p := range processes {
		register.s[i].shutdown = make(chan struct{})
		register.s[i].finished = make(chan struct{})
		go p(args, register.s[i].shutdown, register.s[i].finished)
	}
	return register
}

// Stop - stop all background processes and wait for them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, item := range t.s {
		close(item.shutdown)
	}

	for _, item := range t.s {
		<-item.finished
	}
}
