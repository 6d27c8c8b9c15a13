// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apivault/apivault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *httpVaultClient {
	t.Helper()
	c := NewHTTPVaultClient(HTTPClientConfig{BaseURL: serverURL})
	return c.(*httpVaultClient)
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestClientRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "1234", req.PIN)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Response: models.Response{Success: true, Message: "User registered successfully"},
			Token:    "signed-jwt",
			User:     models.UserPayload{ID: 1, Username: "alice", FullName: "Alice"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	user, err := c.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Password: "secret",
		FullName: "Alice",
		PIN:      "1234",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "signed-jwt", c.Token(), "register must store the session token")
}

func TestClientRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.Response{Success: false, Message: "Username already exists"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Username already exists")
	assert.Empty(t, c.Token())
}

func TestClientLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.Response{Success: false, Message: "Invalid credentials"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Authenticated requests ──────────────────────────────────────────────────

func TestClient_BearerHeaderAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.KeysResponse{
			Response: models.Response{Success: true},
			Keys:     []models.KeyMetadata{{ID: 1, Title: "OpenWeather"}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("session-token")

	keys, err := c.ListKeys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "OpenWeather", keys[0].Title)
}

func TestClientRevealKey_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keys/10/reveal", r.URL.Path)

		var req models.RevealRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1234", req.PIN)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RevealResponse{
			Response: models.Response{Success: true},
			Key:      models.RevealedKey{ID: 10, Title: "OpenWeather", KeyValue: "plain-api-key"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("session-token")

	key, err := c.RevealKey(context.Background(), 10, "1234")
	require.NoError(t, err)
	assert.Equal(t, "plain-api-key", key.KeyValue)
}

func TestClientRevealKey_WrongPIN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.Response{Success: false, Message: "Invalid PIN"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("session-token")

	_, err := c.RevealKey(context.Background(), 10, "9999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid PIN")
}

func TestClientDeleteKey_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.Response{Success: false, Message: "API key not found"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("session-token")

	err := c.DeleteKey(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientLogout_DropsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Response{Success: true, Message: "Logged out successfully"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("session-token")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())
}
