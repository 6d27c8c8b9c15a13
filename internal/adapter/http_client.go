// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apivault/apivault/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the HTTP implementation of [VaultClient].
type HTTPClientConfig struct {
	// BaseURL is the root of the api-vault server,
	// e.g. "http://localhost:5000".
	BaseURL string

	// Timeout bounds each request round trip.
	Timeout time.Duration
}

type httpVaultClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPVaultClient builds a [VaultClient] speaking the server's REST API
// over HTTP. The session token is sent as a bearer header; the client does
// not rely on cookies, so it works from any non-browser environment.
func NewHTTPVaultClient(cfg HTTPClientConfig) VaultClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVaultClient{client: cli}
}

func (h *httpVaultClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultClient) Register(ctx context.Context, register models.RegisterRequest) (models.UserPayload, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(register).
		Post("/api/auth/register")
	if err != nil {
		return models.UserPayload{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPayload{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.UserPayload{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth.User, nil
}

func (h *httpVaultClient) Login(ctx context.Context, login models.LoginRequest) (models.UserPayload, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(login).
		Post("/api/auth/login")
	if err != nil {
		return models.UserPayload{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPayload{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.UserPayload{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth.User, nil
}

func (h *httpVaultClient) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpVaultClient) Me(ctx context.Context) (models.UserPayload, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.UserPayload{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPayload{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserPayload{}, fmt.Errorf("decode me response: %w", err)
	}

	return user.User, nil
}

func (h *httpVaultClient) ListKeys(ctx context.Context) ([]models.KeyMetadata, error) {
	resp, err := h.authedRequest(ctx).Get("/api/keys")
	if err != nil {
		return nil, fmt.Errorf("list keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var keys models.KeysResponse
	if err = json.Unmarshal(resp.Body(), &keys); err != nil {
		return nil, fmt.Errorf("decode list keys response: %w", err)
	}

	return keys.Keys, nil
}

func (h *httpVaultClient) CreateKey(ctx context.Context, create models.CreateKeyRequest) (models.KeyMetadata, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		Post("/api/keys")
	if err != nil {
		return models.KeyMetadata{}, fmt.Errorf("create key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyMetadata{}, err
	}

	var key models.KeyResponse
	if err = json.Unmarshal(resp.Body(), &key); err != nil {
		return models.KeyMetadata{}, fmt.Errorf("decode create key response: %w", err)
	}

	return key.Key, nil
}

func (h *httpVaultClient) UpdateKey(ctx context.Context, keyID int64, update models.UpdateKeyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(fmt.Sprintf("/api/keys/%d", keyID))
	if err != nil {
		return fmt.Errorf("update key request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultClient) DeleteKey(ctx context.Context, keyID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/keys/%d", keyID))
	if err != nil {
		return fmt.Errorf("delete key request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultClient) RevealKey(ctx context.Context, keyID int64, pin string) (models.RevealedKey, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RevealRequest{PIN: pin}).
		Post(fmt.Sprintf("/api/keys/%d/reveal", keyID))
	if err != nil {
		return models.RevealedKey{}, fmt.Errorf("reveal key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevealedKey{}, err
	}

	var reveal models.RevealResponse
	if err = json.Unmarshal(resp.Body(), &reveal); err != nil {
		return models.RevealedKey{}, fmt.Errorf("decode reveal response: %w", err)
	}

	return reveal.Key, nil
}

func (h *httpVaultClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
