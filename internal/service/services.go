// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package service

import (
	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/crypto"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/store"
)

// Services aggregates every business-logic service of the server.
type Services struct {
	AuthService   AuthService
	APIKeyService APIKeyService
}

// NewServices wires all services to the given repositories and cipher.
func NewServices(storages *store.Storages, cipher crypto.Cipher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, logger),
		APIKeyService: NewAPIKeyService(storages.APIKeyRepository, storages.UserRepository, cipher, logger),
	}
}
