package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/models"
)

// fakeSellerRepository is an in-memory SellerRepository for service tests.
type fakeSellerRepository struct {
	sellers  map[string]models.Seller
	nextID   int64
	failWith error
}

func newFakeSellerRepository() *fakeSellerRepository {
	return &fakeSellerRepository{
		sellers: make(map[string]models.Seller),
		nextID:  1,
	}
}

func (f *fakeSellerRepository) CreateSeller(ctx context.Context, seller models.Seller) (models.Seller, error) {
	if f.failWith != nil {
		return models.Seller{}, f.failWith
	}
	if _, exists := f.sellers[seller.Login]; exists {
		return models.Seller{}, store.ErrLoginAlreadyExists
	}

	seller.SellerID = f.nextID
	f.nextID++
	seller.CreatedAt = time.Now()
	f.sellers[seller.Login] = seller

	return seller, nil
}

func (f *fakeSellerRepository) FindSellerByLogin(ctx context.Context, login string) (models.Seller, error) {
	if f.failWith != nil {
		return models.Seller{}, f.failWith
	}
	seller, ok := f.sellers[login]
	if !ok {
		return models.Seller{}, store.ErrNoSellerWasFound
	}
	return seller, nil
}

func testAuthConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "seller-sync-test",
		TokenDuration: time.Hour,
	}
}

func TestAuthService_RegisterSeller(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger("test")

	t.Run("success hashes the password", func(t *testing.T) {
		repo := newFakeSellerRepository()
		auth := NewAuthService(repo, testAuthConfig(), log)

		registered, err := auth.RegisterSeller(ctx, models.Seller{Login: "acme", Name: "ACME"}, "s3cret")
		require.NoError(t, err)

		assert.Equal(t, int64(1), registered.SellerID)
		assert.NotEqual(t, "s3cret", registered.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(registered.PasswordHash), []byte("s3cret")))
	})

	t.Run("empty login is rejected", func(t *testing.T) {
		auth := NewAuthService(newFakeSellerRepository(), testAuthConfig(), log)

		_, err := auth.RegisterSeller(ctx, models.Seller{}, "s3cret")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		auth := NewAuthService(newFakeSellerRepository(), testAuthConfig(), log)

		_, err := auth.RegisterSeller(ctx, models.Seller{Login: "acme"}, "")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("duplicate login surfaces the storage sentinel", func(t *testing.T) {
		repo := newFakeSellerRepository()
		auth := NewAuthService(repo, testAuthConfig(), log)

		_, err := auth.RegisterSeller(ctx, models.Seller{Login: "acme"}, "s3cret")
		require.NoError(t, err)

		_, err = auth.RegisterSeller(ctx, models.Seller{Login: "acme"}, "other")
		require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger("test")

	setup := func(t *testing.T) (AuthService, *fakeSellerRepository) {
		repo := newFakeSellerRepository()
		auth := NewAuthService(repo, testAuthConfig(), log)
		_, err := auth.RegisterSeller(ctx, models.Seller{Login: "acme"}, "s3cret")
		require.NoError(t, err)
		return auth, repo
	}

	t.Run("correct credentials succeed", func(t *testing.T) {
		auth, _ := setup(t)

		seller, err := auth.Login(ctx, "acme", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "acme", seller.Login)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		auth, _ := setup(t)

		_, err := auth.Login(ctx, "acme", "nope")
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown login surfaces the storage sentinel", func(t *testing.T) {
		auth, _ := setup(t)

		_, err := auth.Login(ctx, "ghost", "s3cret")
		require.ErrorIs(t, err, store.ErrNoSellerWasFound)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		auth, repo := setup(t)
		repo.failWith = errors.New("storage down")

		_, err := auth.Login(ctx, "acme", "s3cret")
		require.Error(t, err)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(newFakeSellerRepository(), testAuthConfig(), logger.NewLogger("test"))

	token, err := auth.CreateToken(ctx, models.Seller{SellerID: 42, Login: "acme"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.SellerID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctx := context.Background()
	cfg := testAuthConfig()
	cfg.TokenDuration = -time.Minute
	auth := NewAuthService(newFakeSellerRepository(), cfg, logger.NewLogger("test"))

	token, err := auth.CreateToken(ctx, models.Seller{SellerID: 42})
	require.NoError(t, err)

	_, err = auth.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(newFakeSellerRepository(), testAuthConfig(), logger.NewLogger("test"))

	otherCfg := testAuthConfig()
	otherCfg.TokenIssuer = "someone-else"
	other := NewAuthService(newFakeSellerRepository(), otherCfg, logger.NewLogger("test"))

	token, err := other.CreateToken(ctx, models.Seller{SellerID: 42})
	require.NoError(t, err)

	_, err = auth.ParseToken(ctx, token.SignedString)
	require.Error(t, err)
}
