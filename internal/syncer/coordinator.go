// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package syncer

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

// SnapshotFunc returns the complete current authoritative set of items the
// given seller is entitled to see — never a page, never a delta. Tenant
// filtering happens inside the function. Failures propagate unchanged to
// the caller; there is no partial-snapshot mode.
type SnapshotFunc[T models.Syncable] func(ctx context.Context, sellerID int64) ([]T, error)

// EnrichFunc joins additional data into the upsert set before encoding
// (e.g. attaching customer custom attributes). It runs exactly once, on the
// upsert set only, so its cost is bounded by the delta size rather than the
// collection size.
type EnrichFunc[T models.Syncable] func(ctx context.Context, upserts []T) ([]T, error)

// EntitySyncer is the transport-facing view of a [Coordinator]. The HTTP
// layer routes every entity through this interface so all eleven entity
// types behave identically, including under failure.
type EntitySyncer interface {
	// Entity returns the URL path segment of the entity type ("customer",
	// "product", ...).
	Entity() string

	SyncV3(ctx context.Context, sellerID int64, req models.SyncV3Request) (models.SyncResponse, error)
	SyncV4(ctx context.Context, sellerID int64, req models.SyncV4Request) (models.SyncResponse, error)
}

// Coordinator is the generic sync façade one entity type specializes by
// composition: a snapshot fetch function, an encoder set, and an optional
// enrichment hook. Both operations are stateless and idempotent; any
// failure aborts the whole call and surfaces to the transport boundary.
type Coordinator[T models.Syncable] struct {
	entity   string
	fetch    SnapshotFunc[T]
	encoders *EncoderSet[T]
	enrich   EnrichFunc[T]
}

// Option customizes a [Coordinator] during construction.
type Option[T models.Syncable] func(*Coordinator[T])

// WithEnrichment installs hook as the pre-encoding enrichment step.
func WithEnrichment[T models.Syncable](hook EnrichFunc[T]) Option[T] {
	return func(c *Coordinator[T]) {
		c.enrich = hook
	}
}

// NewCoordinator constructs the sync façade for one entity type.
func NewCoordinator[T models.Syncable](entity string, fetch SnapshotFunc[T], encoders *EncoderSet[T], opts ...Option[T]) *Coordinator[T] {
	if fetch == nil {
		panic("syncer: nil snapshot function for entity " + entity)
	}
	if encoders == nil {
		panic("syncer: nil encoder set for entity " + entity)
	}

	c := &Coordinator[T]{
		entity:   entity,
		fetch:    fetch,
		encoders: encoders,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Entity implements [EntitySyncer].
func (c *Coordinator[T]) Entity() string {
	return c.entity
}

// SyncV3 serves the syncdata3 operation: unconditional id-presence semantics
// (useIDsInDB = true) and the entity-default row version 0.
func (c *Coordinator[T]) SyncV3(ctx context.Context, sellerID int64, req models.SyncV3Request) (models.SyncResponse, error) {
	return c.run(ctx, sellerID, req.IDsInDB, req.LastUpdateTs, true, 0)
}

// SyncV4 serves the syncdata4 operation: caller-selectable id-presence gate
// and row version. The version is validated before any query executes.
func (c *Coordinator[T]) SyncV4(ctx context.Context, sellerID int64, req models.SyncV4Request) (models.SyncResponse, error) {
	return c.run(ctx, sellerID, req.IDsInDB, req.LastUpdateTs, req.UseIDsInDB, req.CompressionVersion)
}

// run is the shared pipeline: resolve encoder → fetch snapshot → classify →
// enrich upserts → encode → envelope.
func (c *Coordinator[T]) run(ctx context.Context, sellerID int64, idsInDB []int64, lastUpdateMs *int64, useIDsInDB bool, rowVersion int) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	// Fail fast on protocol skew before touching storage.
	enc, err := c.encoders.Resolve(rowVersion)
	if err != nil {
		log.Err(err).
			Str("entity", c.entity).
			Int64("seller_id", sellerID).
			Int("row_version", rowVersion).
			Msg("requested row version is not registered")
		return models.SyncResponse{}, fmt.Errorf("sync %s: %w", c.entity, err)
	}

	snapshot, err := c.fetch(ctx, sellerID)
	if err != nil {
		log.Err(err).
			Str("entity", c.entity).
			Int64("seller_id", sellerID).
			Msg("failed to fetch snapshot")
		return models.SyncResponse{}, fmt.Errorf("sync %s: %w", c.entity, err)
	}

	delta := Classify(snapshot, idsInDB, lastUpdateMs, useIDsInDB)

	if c.enrich != nil && len(delta.Upserts) > 0 {
		delta.Upserts, err = c.enrich(ctx, delta.Upserts)
		if err != nil {
			log.Err(err).
				Str("entity", c.entity).
				Int64("seller_id", sellerID).
				Int("upserts", len(delta.Upserts)).
				Msg("enrichment hook failed")
			return models.SyncResponse{}, fmt.Errorf("sync %s: %w", c.entity, err)
		}
	}

	rows := make([]models.CompressedRow, 0, len(delta.Upserts))
	for _, item := range delta.Upserts {
		rows = append(rows, enc(item))
	}

	idsToDelete := delta.IDsToDelete
	if idsToDelete == nil {
		idsToDelete = []int64{}
	}

	log.Debug().
		Str("entity", c.entity).
		Int64("seller_id", sellerID).
		Int("snapshot", len(snapshot)).
		Int("items", len(rows)).
		Int("ids_to_delete", len(idsToDelete)).
		Bool("use_ids_in_db", useIDsInDB).
		Int("row_version", rowVersion).
		Msg("sync computed")

	return models.SyncResponse{
		Items:       rows,
		IDsToDelete: idsToDelete,
	}, nil
}
