// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, requestTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if requestTraceID != "" {
		req.Header.Set(traceIDHeader, requestTraceID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := executeWithTraceID(h, "my-custom-trace-id")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := executeWithTraceID(h, "")

	assert.Equal(t, http.StatusOK, rr.Code)

	generated := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, generated)

	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "generated trace ID must be a valid UUID")
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	h := newTestHandler(nil, nil)

	first := executeWithTraceID(h, "").Header().Get(traceIDHeader)
	second := executeWithTraceID(h, "").Header().Get(traceIDHeader)

	assert.NotEqual(t, first, second)
}
