// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the configuration file
//
// The file is a Lua script, so values can be computed; the table it
// leaves on the stack is mapped onto the supplied structure using
// the "gluamapper" field tags.
package configuration
