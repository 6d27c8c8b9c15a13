// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

// Package service implements the business logic of the vault: account
// registration and login, session-token lifecycle, and the CRUD plus
// two-step reveal flow for stored API keys.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/apivault/apivault/models"
)

// AuthService manages vault accounts and their session tokens.
type AuthService interface {
	// Register creates a new account. The password and PIN are hashed
	// independently before persistence; neither is ever stored in clear.
	//
	// Fails with ErrInvalidDataProvided when a required field is empty,
	// ErrInvalidPIN when the PIN is not exactly four digits, and
	// store.ErrUsernameAlreadyExists (wrapped) on a duplicate handle.
	Register(ctx context.Context, register models.RegisterRequest) (models.User, error)

	// Login verifies a username/password pair and returns the account.
	// Unknown usernames and wrong passwords both fail with
	// ErrWrongCredentials.
	Login(ctx context.Context, login models.LoginRequest) (models.User, error)

	// CurrentUser returns the account a verified session token belongs to.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed session token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and extracts its claims.
	// Fails with ErrTokenIsExpired or ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// APIKeyService manages a user's stored API keys. Every operation is scoped
// by the owning user: a key owned by someone else behaves as if it does not
// exist.
type APIKeyService interface {
	// List returns the non-secret metadata of every key the user owns,
	// newest first.
	List(ctx context.Context, userID int64) ([]models.APIKey, error)

	// Create encrypts the plaintext value and persists a new stored key.
	// Fails with ErrInvalidDataProvided when title or value is empty.
	Create(ctx context.Context, userID int64, create models.CreateKeyRequest) (models.APIKey, error)

	// Update applies the fields present in the patch. A new key value is
	// re-encrypted before persistence. Fails with store.ErrNothingToUpdate
	// on an empty patch and store.ErrAPIKeyNotFound when the key is absent
	// or foreign.
	Update(ctx context.Context, userID, keyID int64, update models.UpdateKeyRequest) error

	// Delete removes a stored key. Fails with store.ErrAPIKeyNotFound when
	// the key is absent or foreign.
	Delete(ctx context.Context, userID, keyID int64) error

	// Reveal returns a stored key with its value decrypted, gated by the
	// account PIN. The PIN is verified before the key is even looked up;
	// a wrong PIN fails with ErrWrongPIN regardless of whether the key
	// exists.
	Reveal(ctx context.Context, userID, keyID int64, pin string) (models.APIKey, error)
}
