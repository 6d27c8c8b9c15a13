package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/models"
)

// apiKeyRepository is the PostgreSQL-backed implementation of
// [APIKeyRepository]. It executes all stored-key CRUD operations against the
// "api_keys" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, key_id, etc.).
type apiKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewAPIKeyRepository constructs an [APIKeyRepository] backed by the
// provided database connection and logger.
func NewAPIKeyRepository(db *DB, logger *logger.Logger) APIKeyRepository {
	logger.Debug().Msg("creating api key repository")
	return &apiKeyRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new stored key. KeyValue must already be the ciphertext
// token; the repository never sees plaintext secrets.
func (r *apiKeyRepository) Create(ctx context.Context, key models.APIKey) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createAPIKey, key.UserID, key.Title, key.KeyValue, key.WebLink)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.Create").
			Int64("user_id", key.UserID).
			Msg("failed to insert api key")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(&key.ID, &key.UserID, &key.Title, &key.KeyValue, &key.WebLink, &key.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.Create").
			Int64("user_id", key.UserID).
			Msg("failed to scan inserted api key")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

// ListByUser returns the metadata of every key owned by userID, newest
// first. The key_value column is deliberately absent from the query.
//
// Returns an empty slice when the user owns no keys.
func (r *apiKeyRepository) ListByUser(ctx context.Context, userID int64) ([]models.APIKey, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listAPIKeysByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing api keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.APIKey, 0, 16)

	for rows.Next() {
		var key models.APIKey

		if scanErr := rows.Scan(&key.ID, &key.UserID, &key.Title, &key.WebLink, &key.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*apiKeyRepository.ListByUser").
				Int64("user_id", userID).
				Msg("failed to scan api key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		keys = append(keys, key)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*apiKeyRepository.ListByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}

// FindByID retrieves a single key scoped by owner, ciphertext included.
// A key owned by another user is reported as [ErrAPIKeyNotFound], never as
// a distinct "forbidden" condition.
func (r *apiKeyRepository) FindByID(ctx context.Context, keyID, userID int64) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	var key models.APIKey
	row := r.DB.QueryRowContext(ctx, findAPIKeyByID, keyID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.FindByID").
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("failed to execute query for finding api key")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&key.ID, &key.UserID, &key.Title, &key.KeyValue, &key.WebLink, &key.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIKey{}, ErrAPIKeyNotFound
		}

		log.Err(err).
			Str("func", "*apiKeyRepository.FindByID").
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("failed to scan api key row")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

// Update applies the non-nil fields of the patch in a single UPDATE built
// with squirrel. Zero affected rows means the key is absent or owned by a
// different user → [ErrAPIKeyNotFound].
func (r *apiKeyRepository) Update(ctx context.Context, update models.APIKeyUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAPIKeyQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.Update").
			Int64("user_id", update.UserID).
			Int64("key_id", update.ID).
			Msg("failed to build update query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.Update").
			Int64("user_id", update.UserID).
			Int64("key_id", update.ID).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAPIKeyNotFound
	}

	return nil
}

// Delete removes a single key scoped by owner. Zero affected rows →
// [ErrAPIKeyNotFound].
func (r *apiKeyRepository) Delete(ctx context.Context, keyID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteAPIKey, keyID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*apiKeyRepository.Delete").
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAPIKeyNotFound
	}

	return nil
}
