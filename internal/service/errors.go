// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidPIN is returned at registration when the chosen PIN is not
	// exactly four digits.
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

	// ErrWrongCredentials is returned by Login when the username is unknown
	// or the password does not verify. The two cases are deliberately
	// indistinguishable.
	ErrWrongCredentials = errors.New("invalid credentials")

	// ErrWrongPIN is returned by Reveal when the supplied PIN does not
	// verify against the account's stored digest.
	ErrWrongPIN = errors.New("invalid pin")

	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpired is returned by ParseToken for a token whose exp
	// claim is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken for every other
	// validation failure: bad signature, wrong issuer, malformed string.
	ErrTokenIsInvalid = errors.New("token is invalid")
)
