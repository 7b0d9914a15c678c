package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/mock"
	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	customers *mock.MockCustomerService
	auth      *mock.MockAuthService
	appInfo   *mock.MockAppInfoService
	handler   *Handler
	router    http.Handler
}

func newTestDeps(t *testing.T, cfg config.Server) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := testDeps{
		customers: mock.NewMockCustomerService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	d.handler = NewHandler(&service.Services{
		CustomerService: d.customers,
		AuthService:     d.auth,
		AppInfoService:  d.appInfo,
	}, cfg, logger.Nop())
	d.router = d.handler.Init()
	return d
}

// newDeps builds a router with the login limiter disabled.
func newDeps(t *testing.T) testDeps {
	t.Helper()
	return newTestDeps(t, config.Server{LoginRateLimit: -1})
}

// expectAuthorized makes the next ValidateToken("good") call succeed for vova.
func (d testDeps) expectAuthorized() {
	d.auth.EXPECT().ValidateToken(gomock.Any(), "good").
		Return(tokenFor("vova@test.com", "good"), nil)
}

func tokenFor(subject, signed string) models.Token {
	var token models.Token
	token.Subject = subject
	token.SignedString = signed
	return token
}

func (d testDeps) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	d.router.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr), rr.Body.String())
	return apiErr
}

func vovaView() models.CustomerView {
	return models.NewCustomerView(models.Customer{
		ID: 1, Name: "Vova", Email: "vova@test.com", Age: 22, Gender: models.GenderMale,
	})
}

func ptr[T any](v T) *T { return &v }
