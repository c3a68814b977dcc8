// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/brano-hozza/meta-assetsd/account"
)

// recover the signing key from the global seed flag
func privateKey(globals *globalFlags) (*account.PrivateKey, error) {
	if "" == globals.seed {
		return nil, fmt.Errorf("seed is required, set it with --seed")
	}
	seed, err := hex.DecodeString(globals.seed)
	if nil != err {
		return nil, fmt.Errorf("seed is not valid hex: %s", err)
	}
	return account.PrivateKeyFromSeed(seed)
}

// sign and send one request, print the JSON reply to stdout
//
// GET requests are sent unsigned with an empty body
func submit(globals *globalFlags, method string, path string, body map[string]interface{}) error {

	var buffer []byte
	var err error
	if nil != body {
		buffer, err = json.Marshal(body)
		if nil != err {
			return err
		}
	}

	request, err := http.NewRequest(method, globals.endpoint+path, bytes.NewReader(buffer))
	if nil != err {
		return err
	}

	if "GET" != method {
		private, err := privateKey(globals)
		if nil != err {
			return err
		}

		nonce := make([]byte, 16)
		if _, err := rand.Read(nonce); nil != err {
			return err
		}

		digest := sha3.Sum256(append(nonce, buffer...))
		signature := private.Sign(digest[:])

		request.Header.Set("Content-Type", "application/json")
		request.Header.Set("Registry-Account", private.Account().String())
		request.Header.Set("Registry-Nonce", hex.EncodeToString(nonce))
		request.Header.Set("Registry-Signature", signature.String())
	}

	response, err := http.DefaultClient.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	reply, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}

	if globals.verbose {
		fmt.Printf("status: %s\n", response.Status)
	}

	// reindent the reply for display
	var indented bytes.Buffer
	if err := json.Indent(&indented, reply, "", "  "); nil != err {
		os.Stdout.Write(reply)
		fmt.Printf("\n")
	} else {
		fmt.Printf("%s\n", indented.String())
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("request failed: %s", response.Status)
	}
	return nil
}
