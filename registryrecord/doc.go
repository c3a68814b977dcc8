// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registryrecord - the records held by the asset registry
//
// An asset record binds a name to its owning account; its packed
// binary form is hashed to produce the asset identifier, so the
// identifier is a pure function of (name, owner) at creation time.
//
// A metadata slot value is a three state item: the slot can be
// entirely absent from the store, present with no content, or
// present with a (possibly zero length) content blob.  The packed
// forms keep these states distinct.
package registryrecord
