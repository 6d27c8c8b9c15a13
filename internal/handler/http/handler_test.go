// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, register models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, login models.LoginRequest) (models.User, error)
	currentUserFn func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, register models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, register)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, login models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.APIKeyService
// ─────────────────────────────────────────────

type mockAPIKeyService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.APIKey, error)
	createFn func(ctx context.Context, userID int64, create models.CreateKeyRequest) (models.APIKey, error)
	updateFn func(ctx context.Context, userID, keyID int64, update models.UpdateKeyRequest) error
	deleteFn func(ctx context.Context, userID, keyID int64) error
	revealFn func(ctx context.Context, userID, keyID int64, pin string) (models.APIKey, error)
}

func (m *mockAPIKeyService) List(ctx context.Context, userID int64) ([]models.APIKey, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAPIKeyService) Create(ctx context.Context, userID int64, create models.CreateKeyRequest) (models.APIKey, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, create)
	}
	return models.APIKey{}, nil
}

func (m *mockAPIKeyService) Update(ctx context.Context, userID, keyID int64, update models.UpdateKeyRequest) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, keyID, update)
	}
	return nil
}

func (m *mockAPIKeyService) Delete(ctx context.Context, userID, keyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, keyID)
	}
	return nil
}

func (m *mockAPIKeyService) Reveal(ctx context.Context, userID, keyID int64, pin string) (models.APIKey, error) {
	if m.revealFn != nil {
		return m.revealFn(ctx, userID, keyID, pin)
	}
	return models.APIKey{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(authSvc service.AuthService, keySvc service.APIKeyService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:   authSvc,
			APIKeyService: keySvc,
		},
		tokenMaxAge: 24 * time.Hour,
		logger:      logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-ID middleware that does this in production.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
