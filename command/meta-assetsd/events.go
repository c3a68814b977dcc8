// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/brano-hozza/meta-assetsd/messagebus"
)

// drain the message bus into the event log
//
// the registry treats events as fire-and-forget, so this is the
// whole event sink; replace this loop to forward events elsewhere
func eventLoop(args interface{}, shutdown <-chan struct{}, done chan<- struct{}) {
	log := args.(*logger.L)
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case message := <-messagebus.Chan():
			log.Infof("event: %s: %#v", message.From, message.Item)
		}
	}

	log.Info("stopped")
	close(done)
}
