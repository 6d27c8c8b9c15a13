// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

// Package http implements the HTTP transport layer of the vault.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, and
// access logging are handled in this package before requests are delegated
// to the service layer. Every response body uses the uniform
// success/message envelope.
package http
