// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"time"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenMaxAge bounds the lifetime of the session cookie; it matches the
	// expiry of the JWT the cookie carries.
	tokenMaxAge time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, tokenMaxAge time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		tokenMaxAge: tokenMaxAge,
		logger:      logger,
	}
}
