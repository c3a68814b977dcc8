// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/brano-hozza/meta-assetsd/account"
	"github.com/brano-hozza/meta-assetsd/messagebus"
	"github.com/brano-hozza/meta-assetsd/registry"
	"github.com/brano-hozza/meta-assetsd/storage"
)

// scratch files for testing
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *registry.Registry {
	removeFiles()
	os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return registry.New(storage.Pool.Assets, storage.Pool.Metadata)
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
	drainBus()
}

// discard any events left queued by a test
func drainBus() {
	for {
		select {
		case <-messagebus.Chan():
		default:
			return
		}
	}
}

// deterministic test accounts
func makeAccount(t *testing.T, fill byte) *account.Account {
	private := makePrivateKey(t, fill)
	return private.Account()
}

func makePrivateKey(t *testing.T, fill byte) *account.PrivateKey {
	seed := bytes.Repeat([]byte{fill}, 32)
	private, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return private
}
