// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. The
// server's envelope message is attached to the wrapped error text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
