// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/brano-hozza/meta-assetsd/account"
	"github.com/brano-hozza/meta-assetsd/fault"
	"github.com/brano-hozza/meta-assetsd/messagebus"
	"github.com/brano-hozza/meta-assetsd/registryrecord"
	"github.com/brano-hozza/meta-assetsd/storage"
)

// origin tag for queued events
const eventSource = "registry"

// AssetStored - event emitted after a successful AddAsset
type AssetStored struct {
	Name  []byte
	Owner *account.Account
}

// Registry - the asset registry aggregate
//
// the sole writer of its two pools; operations serialise on the
// embedded lock
type Registry struct {
	sync.Mutex
	log      *logger.L
	assets   storage.Handle
	metadata storage.Handle
}

// New - create a registry over injected pools
func New(assets storage.Handle, metadata storage.Handle) *Registry {
	return &Registry{
		log:      logger.New("registry"),
		assets:   assets,
		metadata: metadata,
	}
}

// key of a metadata slot
func metadataKey(assetId registryrecord.AssetIdentifier, holder *account.Account) []byte {
	return append(assetId[:], holder.Bytes()...)
}

// AddAsset - register an asset for the caller
//
// the identifier is the hash of the packed (name, caller) record, so
// re-registering the identical record lands on the same identifier
// and silently overwrites it; the caller's metadata slot is set to
// the supplied value
func (r *Registry) AddAsset(
	caller *account.Account,
	name []byte,
	metadata registryrecord.Metadata,
) (registryrecord.AssetIdentifier, error) {

	record := registryrecord.AssetRecord{
		Name:  name,
		Owner: caller,
	}

	// packing also validates the name bounds
	packed, err := record.Pack()
	if nil != err {
		return registryrecord.AssetIdentifier{}, err
	}
	assetId := registryrecord.NewAssetIdentifier(packed)

	r.Lock()
	defer r.Unlock()

	r.assets.Put(assetId[:], packed)
	r.metadata.Put(metadataKey(assetId, caller), metadata.Pack())

	r.log.Infof("stored asset: %q  owner: %s  id: %v", name, caller, assetId)

	messagebus.Send(eventSource, AssetStored{
		Name:  name,
		Owner: caller,
	})

	return assetId, nil
}

// TransferAsset - change the recorded owner of an asset
//
// the record keeps its original identifier and name; metadata slots
// are left untouched
func (r *Registry) TransferAsset(
	caller *account.Account,
	assetId registryrecord.AssetIdentifier,
	newOwner *account.Account,
) error {

	r.Lock()
	defer r.Unlock()

	record, err := r.fetchAsset(assetId)
	if nil != err {
		return err
	}
	if record.Owner.String() != caller.String() {
		return fault.ErrInvalidOwner
	}

	newRecord := registryrecord.AssetRecord{
		Name:  record.Name,
		Owner: newOwner,
	}
	packed, err := newRecord.Pack()
	if nil != err {
		return err
	}

	r.assets.Put(assetId[:], packed)

	r.log.Infof("transferred asset: %v  owner: %s -> %s", assetId, caller, newOwner)

	return nil
}

// UpdateMetadata - rewrite the caller's metadata slot on an asset
//
// only requires that the slot already exists: the creation-time
// owner and any registered admin hold slots, and keep them across
// ownership transfers
func (r *Registry) UpdateMetadata(
	caller *account.Account,
	assetId registryrecord.AssetIdentifier,
	metadata registryrecord.Metadata,
) error {

	r.Lock()
	defer r.Unlock()

	key := metadataKey(assetId, caller)
	if !r.metadata.Has(key) {
		return fault.ErrInvalidOwner
	}

	r.metadata.Put(key, metadata.Pack())

	r.log.Debugf("updated metadata: %v  holder: %s", assetId, caller)

	return nil
}

// RegisterAdmin - grant another account a metadata slot on an asset
//
// the slot starts without content; any previous value for that
// account is discarded
func (r *Registry) RegisterAdmin(
	caller *account.Account,
	assetId registryrecord.AssetIdentifier,
	admin *account.Account,
) error {

	r.Lock()
	defer r.Unlock()

	record, err := r.fetchAsset(assetId)
	if nil != err {
		return err
	}
	if record.Owner.String() != caller.String() {
		return fault.ErrInvalidOwner
	}

	r.metadata.Put(metadataKey(assetId, admin), registryrecord.Metadata(nil).Pack())

	r.log.Infof("registered admin: %s on asset: %v", admin, assetId)

	return nil
}

// Asset - read an asset record
func (r *Registry) Asset(assetId registryrecord.AssetIdentifier) (*registryrecord.AssetRecord, error) {
	r.Lock()
	defer r.Unlock()
	return r.fetchAsset(assetId)
}

// Metadata - read a metadata slot
//
// fails with the owner error when the slot was never granted
func (r *Registry) Metadata(
	assetId registryrecord.AssetIdentifier,
	holder *account.Account,
) (registryrecord.Metadata, error) {

	r.Lock()
	defer r.Unlock()

	value := r.metadata.Get(metadataKey(assetId, holder))
	if nil == value {
		return nil, fault.ErrInvalidOwner
	}

	metadata, err := registryrecord.UnpackMetadata(value)
	if nil != err {
		fault.Panicf("registry: corrupt metadata slot for asset: %v  holder: %s  error: %s", assetId, holder, err)
	}
	return metadata, nil
}

// must hold the lock; error is the not-found kind
func (r *Registry) fetchAsset(assetId registryrecord.AssetIdentifier) (*registryrecord.AssetRecord, error) {
	packed := r.assets.Get(assetId[:])
	if nil == packed {
		return nil, fault.ErrInvalidHash
	}

	record, err := registryrecord.Packed(packed).Unpack()
	if nil != err {
		// a record that cannot unpack means the database is damaged
		fault.Panicf("registry: corrupt asset record for: %v  error: %s", assetId, err)
	}
	return record, nil
}
