package replica

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/utils"
	"github.com/webstore/seller-sync/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
}

func signedTestToken(t *testing.T, sellerID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("seller-sync-test", sellerID, time.Hour, "test-sign-key")
	require.NoError(t, err)

	return token.SignedString
}

func TestHTTPServerAdapter_Login(t *testing.T) {
	signed := signedTestToken(t, 42)

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/seller/login", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "acme", req.Login)
		assert.Equal(t, "s3cret", req.Password)

		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := adapter.Login(context.Background(), "acme", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, int64(42), token.SellerID)
	assert.Equal(t, signed, adapter.Token(), "token must be stored for later requests")
}

func TestHTTPServerAdapter_Login_Unauthorized(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))

	_, err := adapter.Login(context.Background(), "acme", "nope")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, adapter.Token())
}

func TestHTTPServerAdapter_Register(t *testing.T) {
	signed := signedTestToken(t, 7)

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/seller/register", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ACME Ltd", req.Name)

		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := adapter.Register(context.Background(), "acme", "s3cret", "ACME Ltd")
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.SellerID)
}

func TestHTTPServerAdapter_SyncV4(t *testing.T) {
	signed := signedTestToken(t, 42)
	watermark := int64(1_600_000_000_000)

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/product/syncdata4", r.URL.Path)
		assert.Equal(t, "Bearer "+signed, r.Header.Get("Authorization"))

		var req models.SyncV4Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.UseIDsInDB)
		assert.Equal(t, []int64{3, 7}, req.IDsInDB)
		require.NotNil(t, req.LastUpdateTs)
		assert.Equal(t, watermark, *req.LastUpdateTs)
		assert.Equal(t, 1, req.CompressionVersion)

		utils.WriteJSON(w, models.SyncResponse{
			Items:       []models.CompressedRow{{float64(9), false, float64(1000)}},
			IDsToDelete: []int64{3},
		}, http.StatusOK)
	}))
	adapter.SetToken(signed)

	resp, err := adapter.SyncV4(context.Background(), "product", models.SyncV4Request{
		UseIDsInDB:         true,
		IDsInDB:            []int64{3, 7},
		LastUpdateTs:       &watermark,
		CompressionVersion: 1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, []int64{3}, resp.IDsToDelete)
}

func TestHTTPServerAdapter_SyncV3(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer/syncdata3", r.URL.Path)
		utils.WriteJSON(w, models.SyncResponse{IDsToDelete: []int64{}}, http.StatusOK)
	}))

	resp, err := adapter.SyncV3(context.Background(), "customer", models.SyncV3Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestHTTPServerAdapter_SyncV4_UnknownVersionSurfaces(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sync failed", http.StatusInternalServerError)
	}))

	_, err := adapter.SyncV4(context.Background(), "product", models.SyncV4Request{CompressionVersion: 99})
	require.ErrorIs(t, err, ErrInternalServerError)
}

func TestHTTPServerAdapter_SaveSetting(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/setting/save", r.URL.Path)

		var req saveSettingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		utils.WriteJSON(w, models.Setting{ID: 1, SellerID: 42, Name: req.Name, Value: req.Value}, http.StatusOK)
	}))

	saved, err := adapter.SaveSetting(context.Background(), "currency", "EUR")
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "EUR", saved.Value)
}

func TestHTTPServerAdapter_SaveReport(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/report/save", r.URL.Path)

		var req saveReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		utils.WriteJSON(w, models.Report{ID: 3, SellerID: 42, Kind: req.Kind, Payload: req.Payload}, http.StatusOK)
	}))

	saved, err := adapter.SaveReport(context.Background(), "monthly_sales", `{"total":120}`)
	require.NoError(t, err)
	assert.Equal(t, "monthly_sales", saved.Kind)
}
