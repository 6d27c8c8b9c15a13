// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package service

import (
	"context"
	"fmt"

	"github.com/apivault/apivault/internal/crypto"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
)

// apiKeyService is the concrete implementation of APIKeyService. It encrypts
// key values on the way into the repository and decrypts them only inside
// Reveal, after the caller's PIN has verified.
type apiKeyService struct {
	// apiKeyRepository is the data-access layer for stored keys.
	apiKeyRepository store.APIKeyRepository

	// userRepository provides the account record holding the PIN digest
	// checked during Reveal.
	userRepository store.UserRepository

	// cipher protects key values at rest.
	cipher crypto.Cipher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAPIKeyService constructs an APIKeyService wired to the given
// repositories and cipher.
func NewAPIKeyService(apiKeyRepository store.APIKeyRepository, userRepository store.UserRepository, cipher crypto.Cipher, logger *logger.Logger) APIKeyService {
	return &apiKeyService{
		apiKeyRepository: apiKeyRepository,
		userRepository:   userRepository,
		cipher:           cipher,
		logger:           logger,
	}
}

// List returns the metadata of every key the user owns, newest first.
// The ciphertext never leaves the repository on this path.
func (s *apiKeyService) List(ctx context.Context, userID int64) ([]models.APIKey, error) {
	log := logger.FromContext(ctx)

	keys, err := s.apiKeyRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing api keys failed")
		return nil, fmt.Errorf("listing api keys failed: %w", err)
	}

	return keys, nil
}

// Create encrypts the plaintext value and persists the new key.
//
// Returns the persisted key with KeyValue holding the ciphertext token, or:
//   - ErrInvalidDataProvided if Title or KeyValue is empty.
//   - A wrapped encryption or storage error otherwise.
func (s *apiKeyService) Create(ctx context.Context, userID int64, create models.CreateKeyRequest) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	if create.Title == "" || create.KeyValue == "" {
		log.Error().Int64("user_id", userID).Msg("api key creation with missing fields")
		return models.APIKey{}, ErrInvalidDataProvided
	}

	encryptedValue, err := s.cipher.Encrypt(create.KeyValue)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("api key encryption failed")
		return models.APIKey{}, fmt.Errorf("api key encryption failed: %w", err)
	}

	key := models.APIKey{
		UserID:   userID,
		Title:    create.Title,
		KeyValue: encryptedValue,
		WebLink:  create.WebLink,
	}

	createdKey, err := s.apiKeyRepository.Create(ctx, key)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("api key creation ended with error")
		return models.APIKey{}, fmt.Errorf("api key creation ended with error: %w", err)
	}

	return createdKey, nil
}

// Update applies the fields present in the patch. A new key value is
// encrypted before it reaches the repository; title and web link pass
// through as-is.
//
// Fails with store.ErrNothingToUpdate on an empty patch and
// store.ErrAPIKeyNotFound when the key is absent or owned by another user.
func (s *apiKeyService) Update(ctx context.Context, userID, keyID int64, update models.UpdateKeyRequest) error {
	log := logger.FromContext(ctx)

	patch := models.APIKeyUpdate{
		ID:      keyID,
		UserID:  userID,
		Title:   update.Title,
		WebLink: update.WebLink,
	}

	if update.KeyValue != nil {
		encryptedValue, err := s.cipher.Encrypt(*update.KeyValue)
		if err != nil {
			log.Err(err).
				Int64("user_id", userID).
				Int64("key_id", keyID).
				Msg("api key encryption failed")
			return fmt.Errorf("api key encryption failed: %w", err)
		}
		patch.KeyValue = &encryptedValue
	}

	if err := s.apiKeyRepository.Update(ctx, patch); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("api key update ended with error")
		return fmt.Errorf("api key update ended with error: %w", err)
	}

	return nil
}

// Delete removes a stored key. Fails with store.ErrAPIKeyNotFound when the
// key is absent or owned by another user.
func (s *apiKeyService) Delete(ctx context.Context, userID, keyID int64) error {
	log := logger.FromContext(ctx)

	if err := s.apiKeyRepository.Delete(ctx, keyID, userID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("api key deletion ended with error")
		return fmt.Errorf("api key deletion ended with error: %w", err)
	}

	return nil
}

// Reveal returns the stored key with its value decrypted.
//
// The caller's PIN is verified against the account digest before the key is
// looked up, so a wrong PIN fails identically whether or not the key exists.
//
// Returns the key with KeyValue holding the plaintext, or:
//   - ErrInvalidDataProvided if the PIN is empty.
//   - ErrWrongPIN if the PIN does not verify.
//   - store.ErrAPIKeyNotFound (wrapped) if the key is absent or foreign.
//   - crypto.ErrDecryptionFailed (wrapped) if the stored ciphertext cannot
//     be reversed.
func (s *apiKeyService) Reveal(ctx context.Context, userID, keyID int64, pin string) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	if pin == "" {
		log.Error().Int64("user_id", userID).Msg("reveal without pin")
		return models.APIKey{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.APIKey{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.VerifySecret(pin, user.PINHash) {
		log.Warn().
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("reveal with wrong pin")
		return models.APIKey{}, ErrWrongPIN
	}

	key, err := s.apiKeyRepository.FindByID(ctx, keyID, userID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("api key search ended with error")
		return models.APIKey{}, fmt.Errorf("api key search ended with error: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(key.KeyValue)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("key_id", keyID).
			Msg("api key decryption failed")
		return models.APIKey{}, fmt.Errorf("api key decryption failed: %w", err)
	}

	key.KeyValue = plaintext

	return key, nil
}
