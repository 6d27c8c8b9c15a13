// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import "errors"

// Sentinel errors used by the authentication middleware and the key
// handlers when extracting credentials and URL parameters. Callers can
// match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the auth middleware when the request
	// carries neither a session cookie nor an "Authorization" header.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two
	// space-separated parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains
	// the expected scheme prefix but the token value itself is an empty
	// string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidKeyID is returned when the {keyID} URL parameter is not a
	// positive integer.
	ErrInvalidKeyID = errors.New("invalid api key id")
)
