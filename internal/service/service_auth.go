// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
	"github.com/golang-jwt/jwt/v5"
)

// pinPattern accepts exactly four ASCII digits. Leading zeros are
// significant, so the PIN stays a string end to end.
var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// authService is the concrete implementation of AuthService. It handles
// account registration, credential verification, and the JWT session-token
// lifecycle using a UserRepository for persistence and bcrypt for both
// password and PIN digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor applied to new password and PIN
	// digests. Stored digests self-describe their cost, so verification is
	// unaffected by later changes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.HashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new vault account.
//
// It validates that every field is present and that the PIN is exactly four
// digits, hashes the password and the PIN with independent bcrypt digests,
// and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - ErrInvalidPIN if the PIN is not exactly four digits.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) Register(ctx context.Context, register models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if register.Username == "" || register.Password == "" || register.FullName == "" || register.PIN == "" {
		log.Error().Str("username", register.Username).Msg("registration with missing fields")
		return models.User{}, ErrInvalidDataProvided
	}

	if !pinPattern.MatchString(register.PIN) {
		log.Error().Str("username", register.Username).Msg("registration with malformed pin")
		return models.User{}, ErrInvalidPIN
	}

	passwordHash, err := utils.HashSecret(register.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("username", register.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	pinHash, err := utils.HashSecret(register.PIN, a.hashCost)
	if err != nil {
		log.Err(err).Str("username", register.Username).Msg("pin hashing failed")
		return models.User{}, fmt.Errorf("pin hashing failed: %w", err)
	}

	user := models.User{
		Username:     register.Username,
		FullName:     register.FullName,
		PasswordHash: passwordHash,
		PINHash:      pinHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", register.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It looks up the account by username and verifies the password against the
// stored bcrypt digest. An unknown username and a wrong password produce the
// same ErrWrongCredentials so that the response does not leak which part was
// wrong.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrWrongCredentials if the account is unknown or the password does
//     not verify.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, login models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if login.Username == "" || login.Password == "" {
		log.Error().Str("username", login.Username).Msg("login with missing fields")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, login.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", login.Username).Msg("login for unknown username")
			return models.User{}, ErrWrongCredentials
		}

		log.Err(err).Str("username", login.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifySecret(login.Password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CurrentUser returns the account record for an already-authenticated user.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Expired tokens are reported as ErrTokenIsExpired;
// every other validation failure (bad signature, wrong issuer, malformed
// string) is normalised to ErrTokenIsInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
