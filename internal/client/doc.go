// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

// Package client implements the replica client application runtime.
//
// It wires authentication, the local SQLite replica, and the background
// synchronization worker into a single process lifecycle.
package client
