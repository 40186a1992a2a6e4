// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package store

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository]. It serves full seller-scoped snapshots of the
// "customers" table and the "customer_attributes" side-table used to enrich
// outgoing customer rows.
type customerRepository struct {
	*DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	return &customerRepository{
		DB:     db,
		logger: logger,
	}
}

// GetCustomers retrieves every customer owned by the given seller, including
// soft-deleted records. Returns an empty slice when no records are found.
func (r *customerRepository) GetCustomers(ctx context.Context, sellerID int64) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := customersQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.GetCustomers").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.GetCustomers").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Customer, 0, 50)

	for rows.Next() {
		var c models.Customer

		scanErr := rows.Scan(
			&c.ID,
			&c.Email,
			&c.FirstName,
			&c.LastName,
			&c.Phone,
			&c.Company,
			&c.Active,
			&c.Deleted,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.LastLoginAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "customerRepository.GetCustomers").
				Int64("seller_id", sellerID).
				Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "customerRepository.GetCustomers").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetCustomerAttributes retrieves the custom attributes of the given
// customers in one query. The result is ordered by (customer_id, key) so the
// caller can group it with a single pass.
func (r *customerRepository) GetCustomerAttributes(ctx context.Context, customerIDs []int64) ([]models.CustomerAttribute, error) {
	log := logger.FromContext(ctx)

	if len(customerIDs) == 0 {
		return nil, nil
	}

	query, args, err := customerAttributesQuery(customerIDs)
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.GetCustomerAttributes").
			Int("customer ids count", len(customerIDs)).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.GetCustomerAttributes").
			Int("customer ids count", len(customerIDs)).
			Msg("failed to execute query for getting customer attributes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.CustomerAttribute, 0, 50)

	for rows.Next() {
		var a models.CustomerAttribute

		if scanErr := rows.Scan(&a.CustomerID, &a.Key, &a.Value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "customerRepository.GetCustomerAttributes").
				Msg("failed to scan customer attribute row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "customerRepository.GetCustomerAttributes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
