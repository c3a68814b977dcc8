// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"

	"github.com/brano-hozza/meta-assetsd/registry"
)

// how long a nonce is remembered for replay detection
const (
	nonceLifetime = 2 * time.Minute
	nonceSweep    = 5 * time.Minute
)

// Server - the HTTP front end
type Server struct {
	log      *logger.L
	registry *registry.Registry
	engine   *gin.Engine
	nonces   *cache.Cache
}

// NewServer - build the router around a registry
func NewServer(r *registry.Registry) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		log:      logger.New("rpc"),
		registry: r,
		nonces:   cache.New(nonceLifetime, nonceSweep),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/v1")

	v1.GET("/assets/:assetId", s.getAsset())
	v1.GET("/assets/:assetId/metadata/:account", s.getMetadata())

	authenticated := v1.Group("", s.authenticate())
	authenticated.POST("/assets", s.addAsset())
	authenticated.POST("/assets/:assetId/transfer", s.transferAsset())
	authenticated.PUT("/assets/:assetId/metadata", s.updateMetadata())
	authenticated.POST("/assets/:assetId/admins", s.registerAdmin())

	s.engine = engine
	return s
}

// Handler - for mounting under a listener or a test server
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve - block serving requests
func (s *Server) Serve(listen string) error {
	s.log.Infof("listening on: %s", listen)
	return s.engine.Run(listen)
}
