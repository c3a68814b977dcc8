// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - caller identity for registry operations
//
// an account is an ed25519 public key prefixed by a key variant
// byte; the text form is Base58 over those bytes plus a four byte
// SHA3-256 checksum
package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/brano-hozza/meta-assetsd/fault"
	"github.com/brano-hozza/meta-assetsd/util"
)

// supported key algorithms
const (
	Nothing = iota // zero key type **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the caller identity
type Account struct {
	PublicKey []byte
}

// AccountFromBase58 - convert the checksummed Base58 text form back
// to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) < checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	// verify the checksum before looking at any content
	payload := accountDecoded[:len(accountDecoded)-checksumLength]
	checksum := sha3.Sum256(payload)
	for i, b := range accountDecoded[len(accountDecoded)-checksumLength:] {
		if checksum[i] != b {
			return nil, fault.ErrChecksumMismatch
		}
	}

	return AccountFromBytes(payload)
}

// AccountFromBytes - convert a binary key variant + public key to an
// account
//
// this is the form stored inside packed asset records
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if ED25519 != keyAlgorithm {
		return nil, fault.ErrInvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrNotPublicKey
	}

	return &Account{
		PublicKey: publicKey,
	}, nil
}

// Bytes - the binary form: key variant followed by the raw public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift | publicKeyCode)
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - the checksummed Base58 text form
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its text form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert text form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.PublicKey = a.PublicKey
	return nil
}

// CheckSignature - verify a message was signed by this account
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, []byte(signature)) {
		return fault.ErrInvalidSignature
	}
	return nil
}
