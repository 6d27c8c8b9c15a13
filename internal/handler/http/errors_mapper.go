// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"errors"
	"net/http"

	"github.com/apivault/apivault/internal/crypto"
	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidPIN:          http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrWrongPIN:            http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrAPIKeyNotFound:        http.StatusNotFound,
	store.ErrNothingToUpdate:       http.StatusBadRequest,

	ErrInvalidKeyID: http.StatusBadRequest,

	crypto.ErrDecryptionFailed: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message for each well-known error.
// Anything not listed here is reported as a generic server error so that
// internal details never leak into response bodies.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "All fields are required",
	service.ErrInvalidPIN:          "PIN must be exactly 4 digits",
	service.ErrWrongCredentials:    "Invalid credentials",
	service.ErrWrongPIN:            "Invalid PIN",
	service.ErrTokenIsExpired:      "Token expired",
	service.ErrTokenIsInvalid:      "Invalid token",

	store.ErrUsernameAlreadyExists: "Username already exists",
	store.ErrNoUserWasFound:        "User not found",
	store.ErrAPIKeyNotFound:        "API key not found",
	store.ErrNothingToUpdate:       "No fields to update",

	ErrInvalidKeyID: "Invalid API key id",

	crypto.ErrDecryptionFailed: "Failed to decrypt API key",
}

const internalServerErrorMessage = "Internal server error"

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return internalServerErrorMessage
}
