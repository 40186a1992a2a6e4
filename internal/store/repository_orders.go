package store

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Orders carry the seller scope directly; line items,
// addresses and invoices inherit it through a join on the owning order or
// customer row.
type orderRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	return &orderRepository{
		DB:     db,
		logger: logger,
	}
}

// GetOrders retrieves every order of the given seller, including
// soft-deleted ones.
func (r *orderRepository) GetOrders(ctx context.Context, sellerID int64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := ordersQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetOrders").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetOrders").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Order, 0, 50)

	for rows.Next() {
		var o models.Order

		scanErr := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.BillingAddressID,
			&o.StatusID,
			&o.PaymentStatusID,
			&o.ShippingStatusID,
			&o.OrderTotal,
			&o.Deleted,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.PaidAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "orderRepository.GetOrders").
				Int64("seller_id", sellerID).
				Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, o)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "orderRepository.GetOrders").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetOrderItems retrieves every order line belonging to the seller's orders.
func (r *orderRepository) GetOrderItems(ctx context.Context, sellerID int64) ([]models.OrderItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := orderItemsQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetOrderItems").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetOrderItems").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting order items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.OrderItem, 0, 50)

	for rows.Next() {
		var i models.OrderItem

		scanErr := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ProductID,
			&i.Quantity,
			&i.UnitPrice,
			&i.DiscountAmt,
			&i.PriceInclTax,
			&i.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "orderRepository.GetOrderItems").
				Int64("seller_id", sellerID).
				Msg("failed to scan order item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, i)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "orderRepository.GetOrderItems").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetAddresses retrieves every address of the seller's customers.
func (r *orderRepository) GetAddresses(ctx context.Context, sellerID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := addressesQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetAddresses").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetAddresses").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Address, 0, 50)

	for rows.Next() {
		var a models.Address

		scanErr := rows.Scan(
			&a.ID,
			&a.CustomerID,
			&a.FirstName,
			&a.LastName,
			&a.City,
			&a.Street,
			&a.ZipCode,
			&a.CountryID,
			&a.Phone,
			&a.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "orderRepository.GetAddresses").
				Int64("seller_id", sellerID).
				Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "orderRepository.GetAddresses").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetInvoices retrieves every invoice issued for the seller's orders.
func (r *orderRepository) GetInvoices(ctx context.Context, sellerID int64) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := invoicesQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetInvoices").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.GetInvoices").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting invoices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Invoice, 0, 50)

	for rows.Next() {
		var inv models.Invoice

		scanErr := rows.Scan(
			&inv.ID,
			&inv.OrderID,
			&inv.Number,
			&inv.TotalInclTax,
			&inv.TotalExclTax,
			&inv.CurrencyCode,
			&inv.IssuedAt,
			&inv.UpdatedAt,
			&inv.PaymentMethod,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "orderRepository.GetInvoices").
				Int64("seller_id", sellerID).
				Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, inv)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "orderRepository.GetInvoices").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
