// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func executeAuth(h *Handler, configure func(r *http.Request), next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if configure != nil {
		configure(req)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func withBearer(token string) func(r *http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookie(token string) func(r *http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{UserID: 42, Username: "john"}

	tests := []struct {
		name           string
		configure      func(r *http.Request)
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
		wantUserID     int64
	}{
		{
			name:           "no cookie, no header → 401",
			configure:      nil,
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name: "invalid header format (no space) → 401",
			configure: func(r *http.Request) {
				r.Header.Set("Authorization", "BearerTokenWithoutSpace")
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:      "valid bearer token → next called, userID in context",
			configure: withBearer("valid-token"),
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     42,
		},
		{
			name:      "valid cookie token → next called, userID in context",
			configure: withCookie("valid-token"),
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     42,
		},
		{
			name:      "expired token → 401 with specific message",
			configure: withBearer("expired-token"),
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:      "other parse error → 401",
			configure: withBearer("bad-token"),
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseTokenFn := tt.parseTokenFn
			if parseTokenFn == nil {
				// ParseToken must not be reached without a token
				parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}

			h := newTestHandler(&mockAuthService{parseTokenFn: parseTokenFn}, nil)

			nextCalled := false
			var capturedUserID any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUserID = r.Context().Value(utils.UserIDCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.configure, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled && tt.wantUserID != 0 {
				assert.Equal(t, tt.wantUserID, capturedUserID)
			}
		})
	}
}

// ---- cookie precedence over header ----

func TestAuth_CookieTakesPrecedenceOverHeader(t *testing.T) {
	var parsedToken string
	h := newTestHandler(&mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			parsedToken = s
			return models.Token{UserID: 1}, nil
		},
	}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")
	}, next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cookie-token", parsedToken)
}

// ---- error response bodies keep the envelope ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing token body", func(t *testing.T) {
		rr := executeAuth(h, nil, next)
		assert.JSONEq(t, `{"success":false,"message":"Access denied. No token provided."}`, rr.Body.String())
	})

	t.Run("expired token body", func(t *testing.T) {
		rr := executeAuth(h, withBearer("expired"), next)
		assert.JSONEq(t, `{"success":false,"message":"Token expired"}`, rr.Body.String())
	})
}
