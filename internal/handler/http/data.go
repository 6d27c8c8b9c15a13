// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"net/http"
	"time"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
)

// sessionCookieName is the cookie carrying the JWT session token. The same
// token is also accepted via the "Authorization" header for non-browser
// clients.
const sessionCookieName = "token"

// respondError maps err to its HTTP status and client-safe message and
// writes the failure envelope. The full error chain goes to the log only.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)

	log.Err(err).
		Str("uri", r.RequestURI).
		Int("status", status).
		Msg("request failed")

	_, _ = utils.WriteJSON(w, models.Response{Success: false, Message: message}, status)
}

// respondMessage writes a bare failure envelope with an explicit message,
// for conditions detected at the transport layer before any service call.
func respondMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.Response{Success: false, Message: message}, status)
}

// setSessionCookie attaches the session token to the response. The cookie is
// HttpOnly so that scripts cannot read the token.
func setSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// userPayload converts an account record to its public profile view.
func userPayload(user models.User) models.UserPayload {
	return models.UserPayload{
		ID:        user.UserID,
		Username:  user.Username,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}

// keyMetadata converts a stored key to its non-secret view.
func keyMetadata(key models.APIKey) models.KeyMetadata {
	return models.KeyMetadata{
		ID:        key.ID,
		Title:     key.Title,
		WebLink:   key.WebLink,
		CreatedAt: key.CreatedAt,
	}
}
