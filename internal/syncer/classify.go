// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package syncer

import (
	"github.com/webstore/seller-sync/models"
)

// Delta is the result of classifying a snapshot against a client's state:
// the subset of the snapshot the client must insert or update locally, and
// the ids the client must remove.
//
// Upserts preserves the snapshot's natural order. The two sets are always
// disjoint by id.
type Delta[T models.Syncable] struct {
	Upserts     []T
	IDsToDelete []int64
}

// Classify computes the insert/update/delete decision for every item of the
// authoritative snapshot, given the client-claimed present ids and the
// optional last-sync watermark (unix milliseconds).
//
// For each snapshot item x, with d(x) = "client already has x.ID" and
// u(x) = "no watermark, or x changed strictly after it":
//
//   - useIDsInDB true (protocol v3, and v4 with the gate on):
//     x is upserted when !d(x) || u(x) — the client lacks it, or it changed.
//   - useIDsInDB false (v4 time-windowed pull):
//     x is upserted only when u(x); id presence never forces a backfill, and
//     IDsToDelete is always empty because absence from a time window must
//     not be misread as deletion.
//
// The watermark comparison is a strict greater-than at millisecond
// granularity. An item updated in the exact watermark millisecond is NOT
// resent; this avoids re-sending the boundary item forever at the cost of a
// theoretical one-update loss when two updates share a millisecond. The
// behavior is intentional and covered by tests.
//
// Deletions are idsInDB minus the snapshot's ids, in idsInDB order with
// duplicates dropped. Absent inputs are normalized, never rejected: a nil
// id list is an empty set and a nil watermark means "everything is new".
func Classify[T models.Syncable](snapshot []T, idsInDB []int64, lastUpdateMs *int64, useIDsInDB bool) Delta[T] {
	known := make(map[int64]struct{}, len(idsInDB))
	for _, id := range idsInDB {
		known[id] = struct{}{}
	}

	var delta Delta[T]

	present := make(map[int64]struct{}, len(snapshot))
	for _, item := range snapshot {
		id := item.GetID()
		present[id] = struct{}{}

		_, clientHas := known[id]
		changed := lastUpdateMs == nil || models.UnixMs(item.GetUpdatedAt()) > *lastUpdateMs

		if (useIDsInDB && !clientHas) || changed {
			delta.Upserts = append(delta.Upserts, item)
		}
	}

	if !useIDsInDB {
		return delta
	}

	reported := make(map[int64]struct{}, len(idsInDB))
	for _, id := range idsInDB {
		if _, inSnapshot := present[id]; inSnapshot {
			continue
		}
		if _, done := reported[id]; done {
			continue
		}
		reported[id] = struct{}{}
		delta.IDsToDelete = append(delta.IDsToDelete, id)
	}

	return delta
}
