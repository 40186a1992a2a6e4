// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package models

// SyncV3Request is the body of POST /api/{entity}/syncdata3.
//
// Both fields are optional: a first-time client sends neither. The server
// holds no per-client state, so the request always carries the client's
// complete picture of its local replica.
type SyncV3Request struct {
	// IDsInDB is the full set of item identifiers currently present in the
	// client's local database for this entity type. nil means "I have
	// nothing yet".
	IDsInDB []int64 `json:"idsInDb"`

	// LastUpdateTs is the unix-millisecond timestamp of the last successful
	// sync. nil means "no watermark — treat everything as changed".
	LastUpdateTs *int64 `json:"lastUpdateTs"`
}

// SyncV4Request is the body of POST /api/{entity}/syncdata4. It extends the
// v3 shape with an explicit id-presence gate and a selectable row version.
type SyncV4Request struct {
	// UseIDsInDB gates both id-presence-based backfill and deletion
	// tracking. When false the caller asserts it wants a pure time-windowed
	// delta: items are included only because they changed, and absence from
	// the snapshot is never reported as a deletion.
	UseIDsInDB bool `json:"useIdsInDb"`

	IDsInDB      []int64 `json:"idsInDb"`
	LastUpdateTs *int64  `json:"lastUpdateTs"`

	// CompressionVersion selects the registered row schema. An unregistered
	// version is a configuration error, never a silent fallback.
	CompressionVersion int `json:"compressionVersion"`
}

// SyncResponse is the uniform envelope returned by every sync endpoint.
type SyncResponse struct {
	// Items holds one compressed row per item the client must insert or
	// update locally, in the adapter's natural order.
	Items []CompressedRow `json:"items"`

	// IDsToDelete lists ids the client claims to have that no longer exist
	// in the authoritative snapshot. Disjoint from the ids in Items.
	IDsToDelete []int64 `json:"idsToDelete"`
}
