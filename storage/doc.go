// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database containing a number of
// prefixed pools; each key is prepended with a single byte so
// multiple logical maps can share the one database
//
//	Assets:
//	  asset identifier   -> packed asset record
//	Metadata:
//	  asset id ‖ account -> packed metadata slot value
package storage
