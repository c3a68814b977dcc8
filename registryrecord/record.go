// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registryrecord

import (
	"github.com/brano-hozza/meta-assetsd/account"
	"github.com/brano-hozza/meta-assetsd/fault"
	"github.com/brano-hozza/meta-assetsd/util"
)

// byte limits for the asset name, both bounds are exclusive
const (
	minNameLength = 3
	maxNameLength = 32
)

// Packed - packed records are just a byte slice
type Packed []byte

// AssetRecord - the unpacked asset record
//
// Name is fixed at creation; Owner changes on transfer, which leaves
// the identifier (derived from the creation-time packed form) keyed
// to the original hash
type AssetRecord struct {
	Name  []byte           `json:"name"`
	Owner *account.Account `json:"owner"`
}

// Pack - serialise an asset record
//
// structure is:
//
//	Varint64(len(name)) name  Varint64(len(owner)) owner
//
// checks the name bounds so no malformed record can reach the store
func (record *AssetRecord) Pack() (Packed, error) {
	if nil == record.Owner {
		return nil, fault.ErrInvalidOwner
	}
	if len(record.Name) <= minNameLength {
		return nil, fault.ErrShortNameProvided
	}
	if len(record.Name) >= maxNameLength {
		return nil, fault.ErrLongNameProvided
	}

	ownerBytes := record.Owner.Bytes()

	buffer := util.ToVarint64(uint64(len(record.Name)))
	buffer = append(buffer, record.Name...)
	buffer = append(buffer, util.ToVarint64(uint64(len(ownerBytes)))...)
	buffer = append(buffer, ownerBytes...)
	return Packed(buffer), nil
}

// AssetId - the identifier of the packed record
func (record *AssetRecord) AssetId() (AssetIdentifier, error) {
	packed, err := record.Pack()
	if nil != err {
		return AssetIdentifier{}, err
	}
	return NewAssetIdentifier(packed), nil
}

// Unpack - decode a packed record fetched from the store
func (packed Packed) Unpack() (*AssetRecord, error) {
	nameLength, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, fault.ErrNotAssetRecord
	}
	buffer := packed[n:]
	if uint64(len(buffer)) < nameLength {
		return nil, fault.ErrNotAssetRecord
	}
	name := make([]byte, nameLength)
	copy(name, buffer[:nameLength])
	buffer = buffer[nameLength:]

	ownerLength, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrNotAssetRecord
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) != ownerLength {
		return nil, fault.ErrNotAssetRecord
	}
	owner, err := account.AccountFromBytes(buffer)
	if nil != err {
		return nil, err
	}

	return &AssetRecord{
		Name:  name,
		Owner: owner,
	}, nil
}
