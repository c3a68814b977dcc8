// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/brano-hozza/meta-assetsd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// basic pool operations
func TestPoolPutGetHasDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Assets

	key := []byte("key-one")
	value := []byte("data-one")

	if p.Has(key) {
		t.Errorf("unexpected key: %q", key)
	}
	if nil != p.Get(key) {
		t.Errorf("unexpected value for: %q", key)
	}

	p.Put(key, value)
	if !p.Has(key) {
		t.Errorf("missing key: %q", key)
	}
	if !bytes.Equal(p.Get(key), value) {
		t.Errorf("value: %q  expected: %q", p.Get(key), value)
	}

	// overwrite is silent
	p.Put(key, []byte("data-one(NEW)"))
	if !bytes.Equal(p.Get(key), []byte("data-one(NEW)")) {
		t.Errorf("overwrite failed: %q", p.Get(key))
	}

	p.Delete(key)
	if p.Has(key) {
		t.Errorf("deleted key still present: %q", key)
	}
}

// the pools must not alias each other despite sharing one database
func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	storage.Pool.Assets.Put(key, []byte("asset side"))
	if storage.Pool.Metadata.Has(key) {
		t.Errorf("metadata pool sees asset key")
	}

	storage.Pool.Metadata.Put(key, []byte("metadata side"))
	if !bytes.Equal(storage.Pool.Assets.Get(key), []byte("asset side")) {
		t.Errorf("asset value clobbered: %q", storage.Pool.Assets.Get(key))
	}
	if !bytes.Equal(storage.Pool.Metadata.Get(key), []byte("metadata side")) {
		t.Errorf("metadata value wrong: %q", storage.Pool.Metadata.Get(key))
	}
}

// values survive a close and reopen
func TestPersistence(t *testing.T) {
	setup(t)

	key := []byte("durable-key")
	value := []byte("durable-value")
	storage.Pool.Assets.Put(key, value)

	storage.Finalise()

	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage reinitialise error: %s", err)
	}
	defer teardown(t)

	if !bytes.Equal(storage.Pool.Assets.Get(key), value) {
		t.Errorf("value lost over restart: %q", storage.Pool.Assets.Get(key))
	}
}

// double initialise must be refused
func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	if err := storage.Initialise(databaseFileName); nil == err {
		t.Errorf("second initialise did not fail")
	}
}
