package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webstore/seller-sync/models"
)

var errStorageDown = errors.New("storage unavailable")

func staticSnapshot(items ...item) SnapshotFunc[item] {
	return func(ctx context.Context, sellerID int64) ([]item, error) {
		return items, nil
	}
}

func TestCoordinator_SyncV3(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t1.Add(time.Hour)

	coord := NewCoordinator("widget", staticSnapshot(it(1, t0), it(3, t2)), NewEncoderSet(testEncoderV0))

	t.Run("first sync returns full collection", func(t *testing.T) {
		resp, err := coord.SyncV3(context.Background(), 10, models.SyncV3Request{})
		require.NoError(t, err)

		require.Len(t, resp.Items, 2)
		assert.Equal(t, int64(1), resp.Items[0][0])
		assert.Equal(t, int64(3), resp.Items[1][0])
		assert.Equal(t, []int64{}, resp.IDsToDelete)
	})

	t.Run("incremental sync classifies and reports deletions", func(t *testing.T) {
		watermark := t1.UnixMilli()
		resp, err := coord.SyncV3(context.Background(), 10, models.SyncV3Request{
			IDsInDB:      []int64{1, 2},
			LastUpdateTs: &watermark,
		})
		require.NoError(t, err)

		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(3), resp.Items[0][0])
		assert.Equal(t, []int64{2}, resp.IDsToDelete)
	})
}

func TestCoordinator_SyncV4(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t1.Add(time.Hour)

	encoders := NewEncoderSet(testEncoderV0).Register(1, testEncoderV1)
	coord := NewCoordinator("widget", staticSnapshot(it(1, t2)), encoders)

	t.Run("gate off suppresses deletions", func(t *testing.T) {
		watermark := t1.UnixMilli()
		resp, err := coord.SyncV4(context.Background(), 10, models.SyncV4Request{
			UseIDsInDB:   false,
			IDsInDB:      []int64{1, 2},
			LastUpdateTs: &watermark,
		})
		require.NoError(t, err)

		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(1), resp.Items[0][0])
		assert.Equal(t, []int64{}, resp.IDsToDelete)
	})

	t.Run("selectable row version changes schema", func(t *testing.T) {
		resp, err := coord.SyncV4(context.Background(), 10, models.SyncV4Request{
			UseIDsInDB:         true,
			CompressionVersion: 1,
		})
		require.NoError(t, err)

		require.Len(t, resp.Items, 1)
		assert.Len(t, resp.Items[0], 3)
	})

	t.Run("unregistered version fails before fetching", func(t *testing.T) {
		fetched := false
		c := NewCoordinator("widget", func(ctx context.Context, sellerID int64) ([]item, error) {
			fetched = true
			return nil, nil
		}, NewEncoderSet(testEncoderV0))

		_, err := c.SyncV4(context.Background(), 10, models.SyncV4Request{CompressionVersion: 5})
		require.ErrorIs(t, err, ErrUnknownRowVersion)
		assert.False(t, fetched, "snapshot must not be fetched for an unknown row version")
	})
}

func TestCoordinator_FailurePropagation(t *testing.T) {
	failing := func(ctx context.Context, sellerID int64) ([]item, error) {
		return nil, errStorageDown
	}
	coord := NewCoordinator("widget", failing, NewEncoderSet(testEncoderV0))

	resp, err := coord.SyncV3(context.Background(), 10, models.SyncV3Request{})
	require.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, resp.Items, "no partial results on adapter failure")
}

func TestCoordinator_Enrichment(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	t.Run("runs once on the upsert set only", func(t *testing.T) {
		var enrichedIDs []int64
		hook := func(ctx context.Context, upserts []item) ([]item, error) {
			for _, u := range upserts {
				enrichedIDs = append(enrichedIDs, u.id)
			}
			return upserts, nil
		}

		// Snapshot has three items; only id 3 passes the predicate.
		coord := NewCoordinator("widget",
			staticSnapshot(it(1, t0), it(2, t0), it(3, t1.Add(time.Minute))),
			NewEncoderSet(testEncoderV0),
			WithEnrichment(hook),
		)

		watermark := t1.UnixMilli()
		_, err := coord.SyncV3(context.Background(), 10, models.SyncV3Request{
			IDsInDB:      []int64{1, 2, 3},
			LastUpdateTs: &watermark,
		})
		require.NoError(t, err)

		assert.Equal(t, []int64{3}, enrichedIDs)
	})

	t.Run("enrichment failure aborts the call", func(t *testing.T) {
		hook := func(ctx context.Context, upserts []item) ([]item, error) {
			return nil, errStorageDown
		}
		coord := NewCoordinator("widget", staticSnapshot(it(1, t0)), NewEncoderSet(testEncoderV0), WithEnrichment(hook))

		_, err := coord.SyncV3(context.Background(), 10, models.SyncV3Request{})
		require.ErrorIs(t, err, errStorageDown)
	})

	t.Run("not invoked for an empty upsert set", func(t *testing.T) {
		called := false
		hook := func(ctx context.Context, upserts []item) ([]item, error) {
			called = true
			return upserts, nil
		}
		coord := NewCoordinator("widget", staticSnapshot(it(1, t0)), NewEncoderSet(testEncoderV0), WithEnrichment(hook))

		watermark := t1.UnixMilli()
		_, err := coord.SyncV3(context.Background(), 10, models.SyncV3Request{
			IDsInDB:      []int64{1},
			LastUpdateTs: &watermark,
		})
		require.NoError(t, err)
		assert.False(t, called)
	})
}
