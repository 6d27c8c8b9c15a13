package store

import (
	"context"

	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. The DB handle is exposed so that startup code can run schema
// migrations against the same pool.
type Storages struct {
	DB *DB

	UserRepository   UserRepository
	APIKeyRepository APIKeyRepository
}

// NewStorages connects to PostgreSQL and wires all repositories to the
// shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:               db,
		UserRepository:   NewUserRepository(db, logger),
		APIKeyRepository: NewAPIKeyRepository(db, logger),
	}, nil
}
