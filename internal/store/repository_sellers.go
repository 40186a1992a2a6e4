package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

// sellerRepository is the PostgreSQL-backed implementation of
// [SellerRepository]. It handles seller account creation and lookup against
// the "sellers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sellerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSellerRepository constructs a [SellerRepository] backed by the provided
// database connection and logger.
func NewSellerRepository(db *DB, logger *logger.Logger) SellerRepository {
	logger.Debug().Msg("creating seller repository")
	return &sellerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSeller persists a new seller record and returns the fully populated
// [models.Seller] with server-assigned fields (SellerID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *sellerRepository) CreateSeller(ctx context.Context, seller models.Seller) (models.Seller, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSeller, seller.Login, seller.Name, seller.PasswordHash)

	// create seller in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sellerRepository.CreateSeller").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Seller{}, ErrLoginAlreadyExists
		default:
			return models.Seller{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved seller from db
	if err := row.Scan(&seller.SellerID, &seller.Login, &seller.Name, &seller.PasswordHash, &seller.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sellerRepository.CreateSeller").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Seller{}, ErrLoginAlreadyExists
		default:
			return models.Seller{}, err
		}
	}

	return seller, nil
}

// FindSellerByLogin retrieves the seller record whose login matches the one
// provided.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoSellerWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sellerRepository) FindSellerByLogin(ctx context.Context, login string) (models.Seller, error) {
	log := logger.FromContext(ctx)

	var found models.Seller
	row := r.db.QueryRowContext(ctx, findSellerByLogin, login)

	// find seller by login
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sellerRepository.FindSellerByLogin").Msg("error: row is nil")
		return models.Seller{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found seller from db
	if err := row.Scan(&found.SellerID, &found.Login, &found.Name, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Seller{}, ErrNoSellerWasFound
		}

		log.Err(err).Str("func", "*sellerRepository.FindSellerByLogin").Msg("error: scanning error")
		return models.Seller{}, err
	}

	return found, nil
}
