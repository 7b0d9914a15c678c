package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/utils"
	"github.com/MKhiriev/go-customer-service/models"
)

const (
	customersPath = "/api/v1/customers"
	customerPath  = "/api/v1/customers/{id}"
	loginPath     = "/api/v1/auth/login"
	versionPath   = "/api/v1/version"
	healthPath    = "/api/v1/health"

	refreshTokenHeader = "X-Refresh-Token"
)

type httpCustomerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCustomerAdapter builds a [CustomerAdapter] for the service at
// cfg.HTTPAddress. A bare host:port is treated as http.
func NewHTTPCustomerAdapter(cfg config.Adapter, logger *logger.Logger) (CustomerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("http customer adapter created")

	return &httpCustomerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCustomerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCustomerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized starts a request carrying the stored bearer token.
func (h *httpCustomerAdapter) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Register POSTs to /api/v1/customers. The access token comes back as the
// plain-text body and in the Authorization header; the header wins.
func (h *httpCustomerAdapter) Register(ctx context.Context, req models.RegistrationRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(customersPath)
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = strings.TrimSpace(resp.String())
	}
	if token == "" {
		return "", fmt.Errorf("register: %w", ErrUnauthorized)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpCustomerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, string, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&authResp).
		Post(loginPath)
	if err != nil {
		return models.AuthResponse{}, "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, "", err
	}

	h.SetToken(authResp.Token)
	return authResp, resp.Header().Get(refreshTokenHeader), nil
}

func (h *httpCustomerAdapter) ListCustomers(ctx context.Context) ([]models.CustomerView, error) {
	var customers []models.CustomerView

	resp, err := h.authorized(ctx).
		SetResult(&customers).
		Get(customersPath)
	if err != nil {
		return nil, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return customers, nil
}

func (h *httpCustomerAdapter) GetCustomer(ctx context.Context, id int64) (models.CustomerView, error) {
	var customer models.CustomerView

	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&customer).
		Get(customerPath)
	if err != nil {
		return models.CustomerView{}, fmt.Errorf("get customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CustomerView{}, err
	}

	return customer, nil
}

func (h *httpCustomerAdapter) UpdateCustomer(ctx context.Context, id int64, req models.UpdateRequest) error {
	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put(customerPath)
	if err != nil {
		return fmt.Errorf("update customer request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCustomerAdapter) DeleteCustomer(ctx context.Context, id int64) error {
	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(customerPath)
	if err != nil {
		return fmt.Errorf("delete customer request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCustomerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpCustomerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}
