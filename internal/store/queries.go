// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createSeller = `INSERT INTO sellers (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING seller_id, login, name, password_hash, created_at;`

	findSellerByLogin = `SELECT seller_id, login, name, password_hash, created_at
    FROM sellers
    WHERE login = $1;`
)

// Snapshot queries.
//
// Every collection a client replicates is fetched as one full seller-scoped
// snapshot ordered by id. Delta computation happens in memory afterwards, so
// no query here carries watermark or id-list conditions.

func customersQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "email", "first_name", "last_name", "phone", "company",
		"active", "deleted", "created_at", "updated_at", "last_login_at",
	).
		From("customers").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func customerAttributesQuery(customerIDs []int64) (string, []any, error) {
	return psql.Select("customer_id", "key", "value").
		From("customer_attributes").
		Where(sq.Eq{"customer_id": customerIDs}).
		OrderBy("customer_id", "key").
		ToSql()
}

func productsQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "name", "sku", "short_description", "price", "old_price",
		"stock_quantity", "category_id", "published", "deleted",
		"created_at", "updated_at",
	).
		From("products").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func categoriesQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "name", "parent_id", "display_order", "published", "deleted", "updated_at",
	).
		From("categories").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func ordersQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "customer_id", "billing_address_id", "status_id",
		"payment_status_id", "shipping_status_id", "order_total",
		"deleted", "created_at", "updated_at", "paid_at",
	).
		From("orders").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

// Order items, addresses and invoices have no seller column of their own;
// tenancy is enforced through the owning order or customer row.

func orderItemsQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"oi.id", "oi.order_id", "oi.product_id", "oi.quantity",
		"oi.unit_price", "oi.discount_amt", "oi.price_incl_tax", "oi.updated_at",
	).
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		Where(sq.Eq{"o.seller_id": sellerID}).
		OrderBy("oi.id").
		ToSql()
}

func addressesQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"a.id", "a.customer_id", "a.first_name", "a.last_name", "a.city",
		"a.street", "a.zip_code", "a.country_id", "a.phone", "a.updated_at",
	).
		From("addresses a").
		Join("customers c ON c.id = a.customer_id").
		Where(sq.Eq{"c.seller_id": sellerID}).
		OrderBy("a.id").
		ToSql()
}

func invoicesQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"i.id", "i.order_id", "i.number", "i.total_incl_tax", "i.total_excl_tax",
		"i.currency_code", "i.issued_at", "i.updated_at", "i.payment_method",
	).
		From("invoices i").
		Join("orders o ON o.id = i.order_id").
		Where(sq.Eq{"o.seller_id": sellerID}).
		OrderBy("i.id").
		ToSql()
}

func settingsQuery(sellerID int64) (string, []any, error) {
	return psql.Select("id", "seller_id", "name", "value", "updated_at").
		From("settings").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func saveSettingQuery(sellerID int64, name, value string) (string, []any, error) {
	return psql.Insert("settings").
		Columns("seller_id", "name", "value").
		Values(sellerID, name, value).
		Suffix(`ON CONFLICT (seller_id, name) DO UPDATE
    SET value = EXCLUDED.value, updated_at = NOW()
    RETURNING id, seller_id, name, value, updated_at`).
		ToSql()
}

func sellerStatsQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "seller_id", "period_kind", "period_from",
		"order_count", "revenue", "updated_at",
	).
		From("seller_stats").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func queuedEmailsQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "to_address", "subject", "sent_tries",
		"sent_at", "created_at", "updated_at",
	).
		From("queued_emails").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func reportsQuery(sellerID int64) (string, []any, error) {
	return psql.Select(
		"id", "seller_id", "kind", "payload", "created_at", "updated_at",
	).
		From("reports").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("id").
		ToSql()
}

func saveReportQuery(sellerID int64, kind, payload string) (string, []any, error) {
	return psql.Insert("reports").
		Columns("seller_id", "kind", "payload").
		Values(sellerID, kind, payload).
		Suffix("RETURNING id, seller_id, kind, payload, created_at, updated_at").
		ToSql()
}
