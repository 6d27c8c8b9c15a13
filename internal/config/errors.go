package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned by validation when no database connection
	// string was supplied by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")

	// ErrNoServerAddress is returned by validation when the HTTP listen
	// address resolves to an empty string.
	ErrNoServerAddress = errors.New("server address is not specified")

	// ErrInvalidTokenDuration is returned by validation when the session
	// token lifetime is zero or negative.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
)
