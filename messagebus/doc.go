// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fire-and-forget event records
//
// operations drop semantic events onto a single buffered queue; a
// background process drains it, so senders never block under normal
// load and never learn whether anyone is listening
package messagebus
