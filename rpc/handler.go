// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brano-hozza/meta-assetsd/account"
	"github.com/brano-hozza/meta-assetsd/fault"
	"github.com/brano-hozza/meta-assetsd/registryrecord"
)

// request bodies
//
// a metadata field is hex encoded; a null or omitted field is a
// contentless slot value, distinct from the empty string
type addAssetRequest struct {
	Name     string  `json:"name"`
	Metadata *string `json:"metadata"`
}

type transferAssetRequest struct {
	Owner string `json:"owner"`
}

type updateMetadataRequest struct {
	Metadata *string `json:"metadata"`
}

type registerAdminRequest struct {
	Admin string `json:"admin"`
}

// POST /v1/assets
func (s *Server) addAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addAssetRequest
		if err := c.ShouldBindJSON(&req); nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		metadata, err := decodeMetadata(req.Metadata)
		if nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid metadata"})
			return
		}

		assetId, err := s.registry.AddAsset(s.caller(c), []byte(req.Name), metadata)
		if nil != err {
			abortOperation(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"asset_id": assetId})
	}
}

// POST /v1/assets/:assetId/transfer
func (s *Server) transferAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		assetId, ok := paramAssetId(c)
		if !ok {
			return
		}

		var req transferAssetRequest
		if err := c.ShouldBindJSON(&req); nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		newOwner, err := account.AccountFromBase58(req.Owner)
		if nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner"})
			return
		}

		if err := s.registry.TransferAsset(s.caller(c), assetId, newOwner); nil != err {
			abortOperation(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"asset_id": assetId})
	}
}

// PUT /v1/assets/:assetId/metadata
func (s *Server) updateMetadata() gin.HandlerFunc {
	return func(c *gin.Context) {
		assetId, ok := paramAssetId(c)
		if !ok {
			return
		}

		var req updateMetadataRequest
		if err := c.ShouldBindJSON(&req); nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		metadata, err := decodeMetadata(req.Metadata)
		if nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid metadata"})
			return
		}

		if err := s.registry.UpdateMetadata(s.caller(c), assetId, metadata); nil != err {
			abortOperation(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"asset_id": assetId})
	}
}

// POST /v1/assets/:assetId/admins
func (s *Server) registerAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		assetId, ok := paramAssetId(c)
		if !ok {
			return
		}

		var req registerAdminRequest
		if err := c.ShouldBindJSON(&req); nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		admin, err := account.AccountFromBase58(req.Admin)
		if nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin"})
			return
		}

		if err := s.registry.RegisterAdmin(s.caller(c), assetId, admin); nil != err {
			abortOperation(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"asset_id": assetId})
	}
}

// GET /v1/assets/:assetId
func (s *Server) getAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		assetId, ok := paramAssetId(c)
		if !ok {
			return
		}

		record, err := s.registry.Asset(assetId)
		if nil != err {
			abortOperation(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"name":  string(record.Name),
			"owner": record.Owner,
		})
	}
}

// GET /v1/assets/:assetId/metadata/:account
func (s *Server) getMetadata() gin.HandlerFunc {
	return func(c *gin.Context) {
		assetId, ok := paramAssetId(c)
		if !ok {
			return
		}
		holder, err := account.AccountFromBase58(c.Param("account"))
		if nil != err {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account"})
			return
		}

		metadata, err := s.registry.Metadata(assetId, holder)
		if nil != err {
			abortOperation(c, err)
			return
		}

		var content *string
		if metadata.HasContent() {
			h := hex.EncodeToString(metadata)
			content = &h
		}
		c.JSON(http.StatusOK, gin.H{"metadata": content})
	}
}

// parse the assetId path parameter, replying 400 when malformed
func paramAssetId(c *gin.Context) (registryrecord.AssetIdentifier, bool) {
	var assetId registryrecord.AssetIdentifier
	if err := assetId.UnmarshalText([]byte(c.Param("assetId"))); nil != err {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset identifier"})
		return assetId, false
	}
	return assetId, true
}

// nil field keeps the slot contentless
func decodeMetadata(field *string) (registryrecord.Metadata, error) {
	if nil == field {
		return nil, nil
	}
	content, err := hex.DecodeString(*field)
	if nil != err {
		return nil, err
	}
	return registryrecord.Metadata(content), nil
}

// map a registry error onto a response
func abortOperation(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case fault.ErrInvalidOwner == err:
		status = http.StatusForbidden
	case fault.IsErrNotFound(err):
		status = http.StatusNotFound
	case fault.IsErrInvalid(err):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
