// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package service

import (
	"time"

	"github.com/webstore/seller-sync/internal/syncer"
	"github.com/webstore/seller-sync/models"
)

// Row encoders. One function per entity per row version.
//
// Column 0 is always the item id. Columns are order-stable within a version
// and append-only across versions; reordering a column inside an existing
// version breaks every deployed client. New fields go into a new version.

// optMs encodes a nullable timestamp as unix milliseconds or JSON null.
func optMs(t *time.Time) any {
	if t == nil {
		return nil
	}
	return models.UnixMs(*t)
}

func encodeCustomerV0(c models.Customer) models.CompressedRow {
	return models.CompressedRow{
		c.ID,
		c.Deleted,
		models.UnixMs(c.UpdatedAt),
		c.Email,
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Active,
	}
}

// encodeCustomerV1 appends company, creation time, last login and the
// enriched custom attributes as [key, value] pairs.
func encodeCustomerV1(c models.Customer) models.CompressedRow {
	attrs := make([]any, 0, len(c.Attributes))
	for _, a := range c.Attributes {
		attrs = append(attrs, []any{a.Key, a.Value})
	}

	row := encodeCustomerV0(c)
	return append(row,
		c.Company,
		models.UnixMs(c.CreatedAt),
		optMs(c.LastLoginAt),
		attrs,
	)
}

func encodeProductV0(p models.Product) models.CompressedRow {
	return models.CompressedRow{
		p.ID,
		p.Deleted,
		models.UnixMs(p.UpdatedAt),
		p.Name,
		p.Sku,
		p.Price,
		p.StockQuantity,
		p.CategoryID,
		p.Published,
	}
}

// encodeProductV1 appends the discount price, the short description and the
// creation time.
func encodeProductV1(p models.Product) models.CompressedRow {
	row := encodeProductV0(p)
	return append(row,
		p.OldPrice,
		p.ShortDescription,
		models.UnixMs(p.CreatedAt),
	)
}

func encodeCategoryV0(c models.Category) models.CompressedRow {
	return models.CompressedRow{
		c.ID,
		c.Deleted,
		models.UnixMs(c.UpdatedAt),
		c.Name,
		c.ParentID,
		c.DisplayOrder,
		c.Published,
	}
}

func encodeOrderV0(o models.Order) models.CompressedRow {
	return models.CompressedRow{
		o.ID,
		o.Deleted,
		models.UnixMs(o.UpdatedAt),
		o.CustomerID,
		o.BillingAddressID,
		o.StatusID,
		o.PaymentStatusID,
		o.ShippingStatusID,
		o.OrderTotal,
		models.UnixMs(o.CreatedAt),
		optMs(o.PaidAt),
	}
}

func encodeOrderItemV0(i models.OrderItem) models.CompressedRow {
	return models.CompressedRow{
		i.ID,
		models.UnixMs(i.UpdatedAt),
		i.OrderID,
		i.ProductID,
		i.Quantity,
		i.UnitPrice,
		i.DiscountAmt,
		i.PriceInclTax,
	}
}

func encodeAddressV0(a models.Address) models.CompressedRow {
	return models.CompressedRow{
		a.ID,
		models.UnixMs(a.UpdatedAt),
		a.CustomerID,
		a.FirstName,
		a.LastName,
		a.City,
		a.Street,
		a.ZipCode,
		a.CountryID,
		a.Phone,
	}
}

func encodeInvoiceV0(i models.Invoice) models.CompressedRow {
	return models.CompressedRow{
		i.ID,
		models.UnixMs(i.UpdatedAt),
		i.OrderID,
		i.Number,
		i.TotalInclTax,
		i.TotalExclTax,
		i.CurrencyCode,
		models.UnixMs(i.IssuedAt),
		i.PaymentMethod,
	}
}

func encodeSettingV0(s models.Setting) models.CompressedRow {
	return models.CompressedRow{
		s.ID,
		models.UnixMs(s.UpdatedAt),
		s.Name,
		s.Value,
	}
}

func encodeSellerStatV0(s models.SellerStat) models.CompressedRow {
	return models.CompressedRow{
		s.ID,
		models.UnixMs(s.UpdatedAt),
		s.PeriodKind,
		models.UnixMs(s.PeriodFrom),
		s.OrderCount,
		s.Revenue,
	}
}

func encodeQueuedEmailV0(q models.QueuedEmail) models.CompressedRow {
	return models.CompressedRow{
		q.ID,
		models.UnixMs(q.UpdatedAt),
		q.ToAddress,
		q.Subject,
		q.SentTries,
		optMs(q.SentAt),
		models.UnixMs(q.CreatedAt),
	}
}

func encodeReportV0(r models.Report) models.CompressedRow {
	return models.CompressedRow{
		r.ID,
		models.UnixMs(r.UpdatedAt),
		r.Kind,
		r.Payload,
		models.UnixMs(r.CreatedAt),
	}
}

func customerEncoders() *syncer.EncoderSet[models.Customer] {
	return syncer.NewEncoderSet(encodeCustomerV0).Register(1, encodeCustomerV1)
}

func productEncoders() *syncer.EncoderSet[models.Product] {
	return syncer.NewEncoderSet(encodeProductV0).Register(1, encodeProductV1)
}
