// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the HTTP interface to the registry
//
// Mutating requests carry a detached ed25519 signature over
// SHA3-256(nonce ‖ body) in the request headers; the verified
// account becomes the operation caller.  Nonces are held for a short
// window to stop replays.  Reads are unauthenticated.
package rpc
