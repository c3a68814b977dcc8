// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/brano-hozza/meta-assetsd/account"
	"github.com/brano-hozza/meta-assetsd/messagebus"
	"github.com/brano-hozza/meta-assetsd/registry"
	"github.com/brano-hozza/meta-assetsd/rpc"
	"github.com/brano-hozza/meta-assetsd/storage"
)

// scratch files for testing
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *rpc.Server {
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

	return rpc.NewServer(registry.New(storage.Pool.Assets, storage.Pool.Metadata))
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
	for {
		select {
		case <-messagebus.Chan():
		default:
			return
		}
	}
}

// deterministic test key
func makePrivateKey(t *testing.T, fill byte) *account.PrivateKey {
	private, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{fill}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return private
}

// build a signed request the way a client would
func signedRequest(
	t *testing.T,
	private *account.PrivateKey,
	method string,
	target string,
	body interface{},
) *http.Request {

	buffer, err := json.Marshal(body)
	if nil != err {
		t.Fatalf("marshal body error: %s", err)
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); nil != err {
		t.Fatalf("nonce error: %s", err)
	}

	digest := sha3.Sum256(append(nonce, buffer...))
	signature := private.Sign(digest[:])

	request := httptest.NewRequest(method, target, bytes.NewReader(buffer))
	request.Header.Set("Registry-Account", private.Account().String())
	request.Header.Set("Registry-Nonce", hex.EncodeToString(nonce))
	request.Header.Set("Registry-Signature", signature.String())
	return request
}

// run a request and decode the JSON reply
func perform(t *testing.T, server *rpc.Server, request *http.Request) (int, map[string]interface{}) {
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	reply := make(map[string]interface{})
	if 0 != recorder.Body.Len() {
		if err := json.Unmarshal(recorder.Body.Bytes(), &reply); nil != err {
			t.Fatalf("reply is not JSON: %q", recorder.Body.String())
		}
	}
	return recorder.Code, reply
}
