package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/internal/utils"
	"github.com/webstore/seller-sync/models"
)

// authService is the concrete implementation of AuthService.
// It handles seller registration, credential verification, and JWT token
// lifecycle using a SellerRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// sellerRepository is the data-access layer used to create and look up sellers.
	sellerRepository store.SellerRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// SellerRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(sellerRepository store.SellerRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		sellerRepository: sellerRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterSeller creates a new seller account.
//
// It validates that both Login and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the SellerRepository.
//
// Returns the persisted seller (with a server-assigned SellerID) or:
//   - ErrInvalidDataProvided if Login or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterSeller(ctx context.Context, seller models.Seller, password string) (models.Seller, error) {
	log := logger.FromContext(ctx)

	if seller.Login == "" || password == "" {
		log.Error().Str("login", seller.Login).Msg("invalid seller data provided")
		return models.Seller{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("login", seller.Login).Msg("password hashing failed")
		return models.Seller{}, fmt.Errorf("password hashing failed: %w", err)
	}
	seller.PasswordHash = string(hash)

	registered, err := a.sellerRepository.CreateSeller(ctx, seller)
	if err != nil {
		log.Err(err).Str("login", seller.Login).Msg("seller creation ended with error")
		return models.Seller{}, fmt.Errorf("seller creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing seller.
//
// It validates that both login and password are non-empty, looks up the
// account by login, and compares the stored bcrypt hash with the supplied
// password.
//
// Returns the authenticated seller record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. seller not
//     found — see store.ErrNoSellerWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, login string, password string) (models.Seller, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid seller data provided")
		return models.Seller{}, ErrInvalidDataProvided
	}

	found, err := a.sellerRepository.FindSellerByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("seller search by login failed")
		return models.Seller{}, fmt.Errorf("seller search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Int64("id", found.SellerID).
			Str("login", found.Login).
			Msg("wrong password")
		return models.Seller{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given seller.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, seller models.Seller) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, seller.SellerID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// The token must be signed with the configured key and carry the configured
// issuer. Expired tokens map to ErrTokenIsExpired; any other validation
// failure is returned as-is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, err
	}

	return token, nil
}
