// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().
		Int64("id", registeredUser.UserID).
		Str("username", registeredUser.Username).
		Msg("user registered")

	setSessionCookie(w, token.SignedString, h.tokenMaxAge)
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Response: models.Response{Success: true, Message: "User registered successfully"},
		Token:    token.SignedString,
		User:     userPayload(registeredUser),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().
		Int64("id", foundUser.UserID).
		Str("username", foundUser.Username).
		Msg("user successfully logged in")

	setSessionCookie(w, token.SignedString, h.tokenMaxAge)
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Response: models.Response{Success: true, Message: "Login successful"},
		Token:    token.SignedString,
		User:     userPayload(foundUser),
	}, http.StatusOK)
}

// logout clears the session cookie. The JWT itself stays valid until its
// expiry; there is no server-side session state to revoke.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	clearSessionCookie(w)
	_, _ = utils.WriteJSON(w, models.Response{Success: true, Message: "Logged out successfully"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		respondMessage(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserResponse{
		Response: models.Response{Success: true},
		User:     userPayload(user),
	}, http.StatusOK)
}
