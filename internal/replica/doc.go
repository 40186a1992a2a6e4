// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

// Package replica implements the mobile-side half of the sync protocol.
//
// It keeps a local SQLite replica of the seller's collections and refreshes
// it against the server's syncdata endpoints. The server holds no per-client
// state, so every refresh sends the replica's complete picture — the full id
// set plus the last-sync watermark — and applies the returned delta locally.
//
// The primary abstractions are [ServerAdapter], which decouples the sync
// logic from the HTTP transport, and [LocalStore], which owns the replica
// rows and per-collection sync state. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling.
package replica
