// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the asset registry state transitions
//
// Keeps two pools: asset identifier to packed asset record, and
// (asset identifier, account) to packed metadata slot value.  All
// mutation goes through the four operations, each of which checks
// every precondition before its first write so a failed call leaves
// no trace.
//
// Authority rules:
//   - the recorded owner alone may transfer an asset or grant new
//     metadata slots
//   - any holder of a metadata slot may rewrite that slot, and a
//     slot is never revoked; after a transfer the former owner and
//     any registered admins keep their slots even though the asset
//     is no longer theirs
package registry
