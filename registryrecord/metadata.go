// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registryrecord

import (
	"github.com/brano-hozza/meta-assetsd/fault"
)

// tag byte prefixed to the stored slot value
const (
	metadataNoContentTag = 0x00
	metadataContentTag   = 0x01
)

// Metadata - the content of a metadata slot
//
// nil means the slot holds no content at all, which is how an admin
// registration starts out; a non-nil zero length slice is an empty
// blob and is a different state
type Metadata []byte

// HasContent - distinguish a contentless slot from one holding a blob
func (metadata Metadata) HasContent() bool {
	return nil != metadata
}

// Pack - serialise a slot value for the store
//
// a single tag byte keeps "no content" apart from "empty content"
func (metadata Metadata) Pack() []byte {
	if nil == metadata {
		return []byte{metadataNoContentTag}
	}
	buffer := make([]byte, 1, 1+len(metadata))
	buffer[0] = metadataContentTag
	return append(buffer, metadata...)
}

// UnpackMetadata - decode a stored slot value
func UnpackMetadata(buffer []byte) (Metadata, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrNotMetadata
	}
	switch buffer[0] {
	case metadataNoContentTag:
		if 1 != len(buffer) {
			return nil, fault.ErrNotMetadata
		}
		return nil, nil
	case metadataContentTag:
		content := make(Metadata, len(buffer)-1)
		copy(content, buffer[1:])
		return content, nil
	default:
		return nil, fault.ErrNotMetadata
	}
}
