// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

// Package syncer implements the generic incremental synchronization engine
// shared by every syncable entity type.
//
// The engine is deliberately split into three small parts:
//
//   - [Classify] — the three-way insert/update/delete classifier. It is a
//     pure function of (snapshot, client state) and is implemented exactly
//     once; entity types never re-derive the predicate.
//   - [EncoderSet] — an explicit version→encoder registry that turns items
//     into positional compressed rows. Requesting an unregistered version is
//     a loud configuration error, never a silent fallback.
//   - [Coordinator] — the per-entity façade composing a snapshot fetch
//     function, an encoder set, and an optional enrichment hook into the
//     two protocol operations, SyncV3 and SyncV4.
//
// Entities plug in capabilities by composition (a fetch function and a table
// of encode functions) rather than by overriding a base type, so the delta
// semantics cannot drift between entity types.
//
// The engine holds no state between requests: the server never persists
// per-client cursors, and every request re-reads the full authoritative
// snapshot. That makes every operation O(snapshot size) regardless of delta
// size — a deliberate simplicity-over-efficiency tradeoff.
package syncer
