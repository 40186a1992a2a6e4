package store

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository], serving the "products" and "categories" tables.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

// GetProducts retrieves every catalog product of the given seller, including
// unpublished and soft-deleted ones.
func (r *catalogRepository) GetProducts(ctx context.Context, sellerID int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := productsQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetProducts").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetProducts").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Product, 0, 50)

	for rows.Next() {
		var p models.Product

		scanErr := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Sku,
			&p.ShortDescription,
			&p.Price,
			&p.OldPrice,
			&p.StockQuantity,
			&p.CategoryID,
			&p.Published,
			&p.Deleted,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "catalogRepository.GetProducts").
				Int64("seller_id", sellerID).
				Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "catalogRepository.GetProducts").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetCategories retrieves every catalog category of the given seller.
func (r *catalogRepository) GetCategories(ctx context.Context, sellerID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := categoriesQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetCategories").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetCategories").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Category, 0, 50)

	for rows.Next() {
		var c models.Category

		scanErr := rows.Scan(
			&c.ID,
			&c.Name,
			&c.ParentID,
			&c.DisplayOrder,
			&c.Published,
			&c.Deleted,
			&c.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "catalogRepository.GetCategories").
				Int64("seller_id", sellerID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "catalogRepository.GetCategories").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
