// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

// Package adapter provides a programmatic Go client for the api-vault REST
// API.
//
// The primary abstraction is [VaultClient], which decouples callers from the
// HTTP transport. The package ships an HTTP implementation
// ([NewHTTPVaultClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/apivault/apivault/models"
)

// VaultClient defines programmatic access to an api-vault server.
// Implementations are responsible for serialisation, session-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type VaultClient interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. Register and Login call it
	// automatically on success.
	SetToken(token string)

	// Token returns the session token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new vault account. On success the returned session
	// token is stored via SetToken. Returns [ErrConflict] (wrapped) when the
	// username is taken.
	Register(ctx context.Context, register models.RegisterRequest) (models.UserPayload, error)

	// Login authenticates an existing account and stores the returned
	// session token via SetToken. Returns [ErrUnauthorized] (wrapped) on bad
	// credentials.
	Login(ctx context.Context, login models.LoginRequest) (models.UserPayload, error)

	// Logout tells the server to clear its session cookie and drops the
	// locally stored token.
	Logout(ctx context.Context) error

	// Me returns the profile of the authenticated account.
	Me(ctx context.Context) (models.UserPayload, error)

	// ListKeys returns the metadata of every stored key, newest first.
	// Key values are never included.
	ListKeys(ctx context.Context) ([]models.KeyMetadata, error)

	// CreateKey stores a new API key. The plaintext value travels only in
	// the request; the response carries metadata alone.
	CreateKey(ctx context.Context, create models.CreateKeyRequest) (models.KeyMetadata, error)

	// UpdateKey applies the fields present in the patch to a stored key.
	// Returns [ErrNotFound] (wrapped) for an absent or foreign key.
	UpdateKey(ctx context.Context, keyID int64, update models.UpdateKeyRequest) error

	// DeleteKey removes a stored key. Returns [ErrNotFound] (wrapped) for an
	// absent or foreign key.
	DeleteKey(ctx context.Context, keyID int64) error

	// RevealKey returns a stored key with its plaintext value, gated by the
	// account PIN. Returns [ErrUnauthorized] (wrapped) on a wrong PIN and
	// [ErrNotFound] (wrapped) for an absent or foreign key.
	RevealKey(ctx context.Context, keyID int64, pin string) (models.RevealedKey, error)
}
