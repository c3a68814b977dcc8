// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/sha3"

	"github.com/brano-hozza/meta-assetsd/account"
)

// request headers carrying the caller identity
const (
	accountHeader   = "Registry-Account"
	nonceHeader     = "Registry-Nonce"
	signatureHeader = "Registry-Signature"
)

// context key for the authenticated caller
const callerKey = "caller"

// nonce length bounds in bytes
const (
	minNonceLength = 8
	maxNonceLength = 64
)

// authenticate - verify the detached signature over the request
//
// the signed message is SHA3-256(nonce ‖ body); on success the
// account is stored in the request context as the caller
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := account.AccountFromBase58(c.GetHeader(accountHeader))
		if nil != err {
			s.log.Warnf("bad account header: %s", err)
			abortUnauthorized(c, "invalid account")
			return
		}

		nonce, err := hex.DecodeString(c.GetHeader(nonceHeader))
		if nil != err || len(nonce) < minNonceLength || len(nonce) > maxNonceLength {
			abortUnauthorized(c, "invalid nonce")
			return
		}

		var signature account.Signature
		if err := signature.UnmarshalText([]byte(c.GetHeader(signatureHeader))); nil != err {
			abortUnauthorized(c, "invalid signature")
			return
		}

		body, err := c.GetRawData()
		if nil != err {
			abortUnauthorized(c, "unreadable body")
			return
		}
		// the handlers still need to bind the body
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		digest := sha3.Sum256(append(nonce, body...))
		if err := caller.CheckSignature(digest[:], signature); nil != err {
			s.log.Warnf("signature check failed for account: %s", caller)
			abortUnauthorized(c, "invalid signature")
			return
		}

		// one use per nonce per account within the lifetime window
		replayKey := caller.String() + ":" + c.GetHeader(nonceHeader)
		if err := s.nonces.Add(replayKey, struct{}{}, nonceLifetime); nil != err {
			s.log.Warnf("replayed nonce from account: %s", caller)
			abortUnauthorized(c, "replayed nonce")
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// caller - the authenticated account set by the middleware
func (s *Server) caller(c *gin.Context) *account.Account {
	return c.MustGet(callerKey).(*account.Account)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
