// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"github.com/brano-hozza/meta-assetsd/account"
	"github.com/brano-hozza/meta-assetsd/fault"
)

// a fixed seed so the test accounts are reproducible
var testSeed = []byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
}

// test binary and text round trips
func TestAccountRoundTrip(t *testing.T) {
	private, err := account.PrivateKeyFromSeed(testSeed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	acc := private.Account()

	fromBytes, err := account.AccountFromBytes(acc.Bytes())
	if nil != err {
		t.Fatalf("account from bytes error: %s", err)
	}
	if !bytes.Equal(fromBytes.PublicKey, acc.PublicKey) {
		t.Errorf("bytes round trip: %x  expected: %x", fromBytes.PublicKey, acc.PublicKey)
	}

	fromBase58, err := account.AccountFromBase58(acc.String())
	if nil != err {
		t.Fatalf("account from base58 error: %s", err)
	}
	if !bytes.Equal(fromBase58.PublicKey, acc.PublicKey) {
		t.Errorf("base58 round trip: %x  expected: %x", fromBase58.PublicKey, acc.PublicKey)
	}
}

// corrupted text forms must be rejected
func TestAccountInvalidBase58(t *testing.T) {
	private, err := account.PrivateKeyFromSeed(testSeed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	text := private.Account().String()

	// flip the final character to damage the checksum
	last := text[len(text)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	damaged := text[:len(text)-1] + string(replacement)

	if _, err := account.AccountFromBase58(damaged); nil == err {
		t.Errorf("damaged account text was accepted: %q", damaged)
	}

	if _, err := account.AccountFromBase58("0OIl"); fault.ErrCannotDecodeAccount != err {
		t.Errorf("non base58 text: error: %v  expected: %v", err, fault.ErrCannotDecodeAccount)
	}
}

// signatures verify for the signer and nobody else
func TestCheckSignature(t *testing.T) {
	private, err := account.PrivateKeyFromSeed(testSeed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	acc := private.Account()

	message := []byte("a message to be signed")
	signature := private.Sign(message)

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Errorf("valid signature rejected: %s", err)
	}

	if err := acc.CheckSignature([]byte("another message"), signature); fault.ErrInvalidSignature != err {
		t.Errorf("wrong message: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}

	if err := acc.CheckSignature(message, signature[:16]); fault.ErrInvalidSignature != err {
		t.Errorf("short signature: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}

	otherSeed := make([]byte, len(testSeed))
	copy(otherSeed, testSeed)
	otherSeed[0] ^= 0xff
	other, err := account.PrivateKeyFromSeed(otherSeed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	if err := other.Account().CheckSignature(message, signature); fault.ErrInvalidSignature != err {
		t.Errorf("foreign signature: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}
}
