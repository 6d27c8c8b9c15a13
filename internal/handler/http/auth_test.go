// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/internal/utils"
	"github.com/apivault/apivault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	return nil
}

// ---- register ----

func TestRegister_Success(t *testing.T) {
	now := time.Now()
	h := newTestHandler(&mockAuthService{
		registerFn: func(_ context.Context, register models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "john", register.Username)
			assert.Equal(t, "1234", register.PIN)
			return models.User{UserID: 1, Username: "john", FullName: "John Doe", CreatedAt: now}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(1), user.UserID)
			return models.Token{SignedString: "signed-jwt", UserID: 1, Username: "john"}, nil
		},
	}, nil)

	body := `{"username":"john","password":"secret","full_name":"John Doe","pin":"1234"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
	assert.Contains(t, rr.Body.String(), `"message":"User registered successfully"`)
	assert.Contains(t, rr.Body.String(), `"token":"signed-jwt"`)
	assert.Contains(t, rr.Body.String(), `"username":"john"`)
	assert.NotContains(t, rr.Body.String(), "password")

	cookie := findSessionCookie(t, rr)
	require.NotNil(t, cookie, "register must set the session cookie")
	assert.Equal(t, "signed-jwt", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json")))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid JSON was passed"}`, rr.Body.String())
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing fields",
			serviceErr:  service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All fields are required",
		},
		{
			name:        "malformed pin",
			serviceErr:  service.ErrInvalidPIN,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "PIN must be exactly 4 digits",
		},
		{
			name:        "duplicate username",
			serviceErr:  store.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "Username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{
				registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}, nil)

			body := `{"username":"john","password":"secret","full_name":"John Doe","pin":"1234"}`
			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
			rr := httptest.NewRecorder()

			h.register(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMessage)
			assert.Contains(t, rr.Body.String(), `"success":false`)
			assert.Nil(t, findSessionCookie(t, rr))
		})
	}
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		loginFn: func(_ context.Context, login models.LoginRequest) (models.User, error) {
			assert.Equal(t, "john", login.Username)
			return models.User{UserID: 7, Username: "john", FullName: "John Doe"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt"}, nil
		},
	}, nil)

	body := `{"username":"john","password":"secret"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Login successful"`)
	assert.Contains(t, rr.Body.String(), `"token":"signed-jwt"`)

	cookie := findSessionCookie(t, rr)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-jwt", cookie.Value)
}

func TestLogin_WrongCredentials(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongCredentials
		},
	}, nil)

	body := `{"username":"john","password":"wrong"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid credentials"}`, rr.Body.String())
}

// ---- logout ----

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil))
	rr := httptest.NewRecorder()

	h.logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rr.Body.String())

	cookie := findSessionCookie(t, rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// ---- me ----

func TestMe_Success(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{UserID: 7, Username: "john", FullName: "John Doe"}, nil
		},
	}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, int64(7)))
	rr := httptest.NewRecorder()

	h.me(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"john"`)
	assert.Contains(t, rr.Body.String(), `"full_name":"John Doe"`)
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestMe_UserVanished(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		currentUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, int64(7)))
	rr := httptest.NewRecorder()

	h.me(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"User not found"}`, rr.Body.String())
}

func TestMe_NoUserIDInContext(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	rr := httptest.NewRecorder()

	h.me(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
