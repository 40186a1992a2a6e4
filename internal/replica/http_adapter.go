package replica

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/utils"
	"github.com/webstore/seller-sync/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// credentialsRequest mirrors the server's auth request body.
type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type saveSettingRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type saveReportRequest struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] configured with the base URL and request timeout from cfg.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) ServerAdapter {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: logger}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. The server returns the bearer token in
// the Authorization response header; the seller id is read from the token's
// subject claim.
func (h *httpServerAdapter) Register(ctx context.Context, login, password, name string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsRequest{Login: login, Password: password, Name: name}).
		Post("/api/seller/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeTokenFromResponse(resp, "register")
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsRequest{Login: login, Password: password}).
		Post("/api/seller/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeTokenFromResponse(resp, "login")
}

// SyncV3 implements [ServerAdapter].
func (h *httpServerAdapter) SyncV3(ctx context.Context, entity string, req models.SyncV3Request) (models.SyncResponse, error) {
	return h.postSync(ctx, "/api/"+entity+"/syncdata3", req)
}

// SyncV4 implements [ServerAdapter].
func (h *httpServerAdapter) SyncV4(ctx context.Context, entity string, req models.SyncV4Request) (models.SyncResponse, error) {
	return h.postSync(ctx, "/api/"+entity+"/syncdata4", req)
}

func (h *httpServerAdapter) postSync(ctx context.Context, path string, body any) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response %s: %w", path, err)
	}

	return sr, nil
}

// SaveSetting implements [ServerAdapter].
func (h *httpServerAdapter) SaveSetting(ctx context.Context, name, value string) (models.Setting, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(saveSettingRequest{Name: name, Value: value}).
		Post("/api/setting/save")
	if err != nil {
		return models.Setting{}, fmt.Errorf("save setting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Setting{}, err
	}

	var saved models.Setting
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.Setting{}, fmt.Errorf("decode save setting response: %w", err)
	}

	return saved, nil
}

// SaveReport implements [ServerAdapter].
func (h *httpServerAdapter) SaveReport(ctx context.Context, kind, payload string) (models.Report, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(saveReportRequest{Kind: kind, Payload: payload}).
		Post("/api/report/save")
	if err != nil {
		return models.Report{}, fmt.Errorf("save report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	var saved models.Report
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.Report{}, fmt.Errorf("decode save report response: %w", err)
	}

	return saved, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) storeTokenFromResponse(resp *resty.Response, op string) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}

	sellerID, err := parseSellerIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse seller id: %w", op, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, SellerID: sellerID}, nil
}

// parseSellerIDFromJWT reads the subject claim without verifying the
// signature. The client has no sign key; the server re-verifies every
// request anyway.
func parseSellerIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}
