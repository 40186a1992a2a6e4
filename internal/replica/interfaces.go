// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package replica

import (
	"context"

	"github.com/webstore/seller-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/replica_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the seller-sync
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new seller account and stores the returned bearer
	// token via SetToken.
	Register(ctx context.Context, login, password, name string) (models.Token, error)

	// Login authenticates an existing seller and stores the returned bearer
	// token via SetToken.
	Login(ctx context.Context, login, password string) (models.Token, error)

	// SyncV3 calls POST /api/{entity}/syncdata3 with unconditional
	// id-presence semantics and the entity-default row version.
	SyncV3(ctx context.Context, entity string, req models.SyncV3Request) (models.SyncResponse, error)

	// SyncV4 calls POST /api/{entity}/syncdata4 with a caller-selectable
	// id-presence gate and row version.
	SyncV4(ctx context.Context, entity string, req models.SyncV4Request) (models.SyncResponse, error)

	// SaveSetting writes one seller setting through the server side channel.
	// The upserted row flows back to other devices via setting sync.
	SaveSetting(ctx context.Context, name, value string) (models.Setting, error)

	// SaveReport uploads a client-generated report row.
	SaveReport(ctx context.Context, kind, payload string) (models.Report, error)
}

// LocalStore owns the on-device replica: one row per synced item plus a
// per-collection sync watermark.
type LocalStore interface {
	// CollectionState returns the full id set currently present locally for
	// entity and the unix-millisecond watermark of the last successful sync.
	// A nil watermark means the collection has never been synced.
	CollectionState(ctx context.Context, entity string) ([]int64, *int64, error)

	// ApplyDelta applies one sync response atomically: upserts every row in
	// resp.Items, removes every id in resp.IDsToDelete, and advances the
	// collection watermark to syncedAtMs.
	ApplyDelta(ctx context.Context, entity string, resp models.SyncResponse, syncedAtMs int64) error

	// Rows returns the stored compressed rows for entity ordered by id.
	Rows(ctx context.Context, entity string) ([]models.CompressedRow, error)

	// Close releases the underlying database handle.
	Close() error
}
