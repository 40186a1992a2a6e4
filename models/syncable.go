// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

// Package models defines the wire-level and domain types shared by the
// server, the sync engine, and the mobile replica client.
//
// Every entity that participates in incremental synchronization implements
// the [Syncable] interface. The sync protocol itself is described by
// [SyncV3Request], [SyncV4Request] and [SyncResponse]; item payloads travel
// as positional [CompressedRow] arrays whose schema is fixed per row version
// and known to the client out of band.
package models

import "time"

// Syncable is the minimal contract an entity must satisfy to be handled by
// the generic delta classifier. Identity and last-modification time are the
// only change signals the protocol uses.
type Syncable interface {
	// GetID returns the entity identifier, unique within its entity type
	// and stable for the lifetime of the item.
	GetID() int64

	// GetUpdatedAt returns the UTC timestamp of the last mutation.
	// It is monotonically non-decreasing for a given item.
	GetUpdatedAt() time.Time
}

// CompressedRow is the positional encoding of one synced item: a
// fixed-length, fixed-order sequence of nullable JSON-safe values.
//
// The schema is never self-describing. Column 0 is always the item id;
// the remaining columns are entity- and version-specific, order-stable
// within a row version and append-only across versions. Reordering columns
// inside an existing version breaks every deployed client.
type CompressedRow []any

// UnixMs converts t to unix milliseconds, the timestamp representation used
// on the wire for watermarks and row columns.
func UnixMs(t time.Time) int64 {
	return t.UnixMilli()
}
