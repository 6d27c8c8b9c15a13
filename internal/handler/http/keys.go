// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
	"github.com/go-chi/chi/v5"
)

// keyIDFromRequest parses the {keyID} URL parameter.
func keyIDFromRequest(r *http.Request) (int64, error) {
	keyID, err := strconv.ParseInt(chi.URLParam(r, "keyID"), 10, 64)
	if err != nil || keyID <= 0 {
		return 0, ErrInvalidKeyID
	}
	return keyID, nil
}

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondMessage(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	keys, err := h.services.APIKeyService.List(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	metadata := make([]models.KeyMetadata, 0, len(keys))
	for _, key := range keys {
		metadata = append(metadata, keyMetadata(key))
	}

	_, _ = utils.WriteJSON(w, models.KeysResponse{
		Response: models.Response{Success: true},
		Keys:     metadata,
	}, http.StatusOK)
}

func (h *Handler) createKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondMessage(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	var req models.CreateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	key, err := h.services.APIKeyService.Create(ctx, userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", userID).
		Int64("key_id", key.ID).
		Msg("api key created")

	_, _ = utils.WriteJSON(w, models.KeyResponse{
		Response: models.Response{Success: true, Message: "API key added successfully"},
		Key:      keyMetadata(key),
	}, http.StatusCreated)
}

func (h *Handler) updateKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondMessage(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	keyID, err := keyIDFromRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.UpdateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.APIKeyService.Update(ctx, userID, keyID, req); err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.Response{Success: true, Message: "API key updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondMessage(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	keyID, err := keyIDFromRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.APIKeyService.Delete(ctx, userID, keyID); err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.Response{Success: true, Message: "API key deleted successfully"}, http.StatusOK)
}

func (h *Handler) revealKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondMessage(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	keyID, err := keyIDFromRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.PIN == "" {
		respondMessage(w, "PIN is required", http.StatusBadRequest)
		return
	}

	key, err := h.services.APIKeyService.Reveal(ctx, userID, keyID, req.PIN)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", userID).
		Int64("key_id", keyID).
		Msg("api key revealed")

	_, _ = utils.WriteJSON(w, models.RevealResponse{
		Response: models.Response{Success: true},
		Key: models.RevealedKey{
			ID:        key.ID,
			Title:     key.Title,
			KeyValue:  key.KeyValue,
			WebLink:   key.WebLink,
			CreatedAt: key.CreatedAt,
		},
	}, http.StatusOK)
}
