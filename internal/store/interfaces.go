// Package store implements PostgreSQL-backed persistence for vault accounts
// and stored API keys. Every query against api_keys is scoped by the owning
// user so that cross-account access is indistinguishable from absence.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/apivault/apivault/models"
)

// UserRepository is the data-access contract for vault accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Fails with ErrUsernameAlreadyExists on a duplicate
	// handle; no partial record is persisted in that case.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves an account by its unique handle.
	// Fails with ErrNoUserWasFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves an account by its identifier.
	// Fails with ErrNoUserWasFound when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// APIKeyRepository is the data-access contract for stored API keys.
type APIKeyRepository interface {
	// Create persists a new stored key (value already encrypted) and returns
	// it with server-assigned fields populated.
	Create(ctx context.Context, key models.APIKey) (models.APIKey, error)

	// ListByUser returns the non-secret metadata of every key owned by the
	// user, newest first. The ciphertext column is never selected.
	ListByUser(ctx context.Context, userID int64) ([]models.APIKey, error)

	// FindByID retrieves a single key, ciphertext included, scoped by owner.
	// Fails with ErrAPIKeyNotFound when the key is absent or owned by a
	// different user.
	FindByID(ctx context.Context, keyID, userID int64) (models.APIKey, error)

	// Update applies the non-nil fields of the patch, scoped by owner.
	// Fails with ErrNothingToUpdate on an empty patch and ErrAPIKeyNotFound
	// when no row matched.
	Update(ctx context.Context, update models.APIKeyUpdate) error

	// Delete removes a single key, scoped by owner. Fails with
	// ErrAPIKeyNotFound when no row matched.
	Delete(ctx context.Context, keyID, userID int64) error
}
