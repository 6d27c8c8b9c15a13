// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package handler

import (
	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/handler/http"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/service"
)

// Handlers aggregates the transport-level handlers of the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers configured in cfg. The token
// duration is forwarded to the HTTP handler so that session cookies expire
// together with the tokens they carry.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App.TokenDuration, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
