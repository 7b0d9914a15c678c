package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-customer-service/internal/app"
	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/models"
)

func TestGetVersion(t *testing.T) {
	d := newDeps(t)
	info := models.AppBuildInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"}
	d.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(info)

	rr := d.do(t, http.MethodGet, "/api/v1/version", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}

func TestGetHealth(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		d := newDeps(t)
		d.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(nil)

		rr := d.do(t, http.MethodGet, "/api/v1/health", nil, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"UP"}`, rr.Body.String())
	})

	t.Run("storage down", func(t *testing.T) {
		d := newDeps(t)
		d.appInfo.EXPECT().CheckHealth(gomock.Any()).
			Return(fmt.Errorf("%w: %w", service.ErrStorageUnavailable, fmt.Errorf("dial tcp: refused")))

		rr := d.do(t, http.MethodGet, "/api/v1/health", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		apiErr := decodeAPIError(t, rr)
		assert.Equal(t, app.MsgServiceUnavailable, apiErr.Message)
		assert.NotContains(t, rr.Body.String(), "refused")
	})
}
