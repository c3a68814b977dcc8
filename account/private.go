// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/brano-hozza/meta-assetsd/fault"
)

// PrivateKey - the signing half of an account
type PrivateKey struct {
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromSeed - deterministically derive a key pair from a
// 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}
	return &PrivateKey{
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// Account - the public identity corresponding to this key
func (private *PrivateKey) Account() *Account {
	publicKey := private.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		PublicKey: publicKey,
	}
}

// Sign - produce a detached signature over a message
func (private *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(private.PrivateKey, message))
}
