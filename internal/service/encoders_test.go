package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webstore/seller-sync/models"
)

func TestCustomerEncoders(t *testing.T) {
	up := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	created := up.Add(-24 * time.Hour)

	customer := models.Customer{
		ID:        7,
		Email:     "a@example.com",
		FirstName: "Ann",
		LastName:  "Archer",
		Phone:     "555-0100",
		Company:   "Archer Ltd",
		Active:    true,
		Deleted:   false,
		CreatedAt: created,
		UpdatedAt: up,
		Attributes: []models.CustomerAttribute{
			{CustomerID: 7, Key: "gender", Value: "F"},
		},
	}

	t.Run("version 0 schema", func(t *testing.T) {
		row := encodeCustomerV0(customer)

		require.Len(t, row, 8)
		assert.Equal(t, int64(7), row[0], "column 0 must be the id")
		assert.Equal(t, false, row[1])
		assert.Equal(t, up.UnixMilli(), row[2])
		assert.Equal(t, "a@example.com", row[3])
	})

	t.Run("version 1 appends, never reorders", func(t *testing.T) {
		v0 := encodeCustomerV0(customer)
		v1 := encodeCustomerV1(customer)

		require.Greater(t, len(v1), len(v0))
		assert.Equal(t, v0, v1[:len(v0)], "a new version may only append columns")

		assert.Equal(t, "Archer Ltd", v1[8])
		assert.Equal(t, created.UnixMilli(), v1[9])
		assert.Nil(t, v1[10], "absent last login must encode as null")
		assert.Equal(t, []any{[]any{"gender", "F"}}, v1[11])
	})

	t.Run("registry carries versions 0 and 1", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, customerEncoders().Versions())
	})
}

func TestProductEncoders(t *testing.T) {
	up := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	product := models.Product{
		ID:               3,
		Name:             "Mug",
		Sku:              "MUG-1",
		ShortDescription: "A mug",
		Price:            9.99,
		OldPrice:         12.99,
		StockQuantity:    14,
		CategoryID:       2,
		Published:        true,
		CreatedAt:        up.Add(-time.Hour),
		UpdatedAt:        up,
	}

	t.Run("version 0 schema", func(t *testing.T) {
		row := encodeProductV0(product)

		require.Len(t, row, 9)
		assert.Equal(t, int64(3), row[0])
		assert.Equal(t, false, row[1])
		assert.Equal(t, up.UnixMilli(), row[2])
		assert.Equal(t, "Mug", row[3])
		assert.Equal(t, 9.99, row[5])
	})

	t.Run("version 1 appends, never reorders", func(t *testing.T) {
		v0 := encodeProductV0(product)
		v1 := encodeProductV1(product)

		require.Greater(t, len(v1), len(v0))
		assert.Equal(t, v0, v1[:len(v0)])
		assert.Equal(t, 12.99, v1[9])
		assert.Equal(t, "A mug", v1[10])
	})

	t.Run("registry carries versions 0 and 1", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, productEncoders().Versions())
	})
}

func TestEncoders_ColumnZeroIsAlwaysID(t *testing.T) {
	up := time.Now()
	sent := up.Add(-time.Minute)

	rows := []models.CompressedRow{
		encodeCustomerV0(models.Customer{ID: 1, UpdatedAt: up}),
		encodeProductV0(models.Product{ID: 2, UpdatedAt: up}),
		encodeCategoryV0(models.Category{ID: 3, UpdatedAt: up}),
		encodeOrderV0(models.Order{ID: 4, UpdatedAt: up}),
		encodeOrderItemV0(models.OrderItem{ID: 5, UpdatedAt: up}),
		encodeAddressV0(models.Address{ID: 6, UpdatedAt: up}),
		encodeInvoiceV0(models.Invoice{ID: 7, UpdatedAt: up}),
		encodeSettingV0(models.Setting{ID: 8, UpdatedAt: up}),
		encodeSellerStatV0(models.SellerStat{ID: 9, UpdatedAt: up}),
		encodeQueuedEmailV0(models.QueuedEmail{ID: 10, UpdatedAt: up, SentAt: &sent}),
		encodeReportV0(models.Report{ID: 11, UpdatedAt: up}),
	}

	for i, row := range rows {
		assert.Equal(t, int64(i+1), row[0], "row %d: column 0 must be the id", i)
	}
}

func TestOptMs(t *testing.T) {
	assert.Nil(t, optMs(nil))

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, ts.UnixMilli(), optMs(&ts))
}
