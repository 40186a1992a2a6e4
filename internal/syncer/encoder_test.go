package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webstore/seller-sync/models"
)

func testEncoderV0(i item) models.CompressedRow {
	return models.CompressedRow{i.id, models.UnixMs(i.up)}
}

func testEncoderV1(i item) models.CompressedRow {
	return models.CompressedRow{i.id, models.UnixMs(i.up), "v1"}
}

func TestEncoderSet_Resolve(t *testing.T) {
	set := NewEncoderSet(testEncoderV0).Register(1, testEncoderV1)

	t.Run("registered versions resolve", func(t *testing.T) {
		for _, v := range []int{0, 1} {
			enc, err := set.Resolve(v)
			require.NoError(t, err)
			require.NotNil(t, enc)
		}
	})

	t.Run("unregistered version fails loudly", func(t *testing.T) {
		enc, err := set.Resolve(5)
		require.ErrorIs(t, err, ErrUnknownRowVersion)
		assert.Nil(t, enc)
		assert.Contains(t, err.Error(), "requested 5")
	})

	t.Run("no silent fallback to version 0", func(t *testing.T) {
		_, err := set.Resolve(2)
		require.ErrorIs(t, err, ErrUnknownRowVersion)
	})
}

func TestEncoderSet_Versions(t *testing.T) {
	set := NewEncoderSet(testEncoderV0).Register(2, testEncoderV1).Register(1, testEncoderV1)

	assert.Equal(t, []int{0, 1, 2}, set.Versions())
}

func TestEncoderSet_Encode(t *testing.T) {
	up := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	set := NewEncoderSet(testEncoderV0).Register(1, testEncoderV1)
	items := []item{it(1, up), it(2, up)}

	t.Run("preserves order and schema", func(t *testing.T) {
		rows, err := set.Encode(items, 1)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, models.CompressedRow{int64(1), up.UnixMilli(), "v1"}, rows[0])
		assert.Equal(t, models.CompressedRow{int64(2), up.UnixMilli(), "v1"}, rows[1])
	})

	t.Run("unknown version encodes nothing", func(t *testing.T) {
		rows, err := set.Encode(items, 9)
		require.ErrorIs(t, err, ErrUnknownRowVersion)
		assert.Nil(t, rows)
	})
}

func TestEncoderSet_RegistrationMisuse(t *testing.T) {
	t.Run("nil version 0 encoder panics", func(t *testing.T) {
		assert.Panics(t, func() { NewEncoderSet[item](nil) })
	})

	t.Run("duplicate version panics", func(t *testing.T) {
		set := NewEncoderSet(testEncoderV0)
		assert.Panics(t, func() { set.Register(0, testEncoderV1) })
	})

	t.Run("nil encoder panics", func(t *testing.T) {
		set := NewEncoderSet(testEncoderV0)
		assert.Panics(t, func() { set.Register(1, nil) })
	})
}
