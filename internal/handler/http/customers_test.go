package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/internal/utils"
	"github.com/MKhiriev/go-customer-service/models"
)

// ─────────────────────────────────────────────
// POST /api/v1/customers
// ─────────────────────────────────────────────

func TestRegisterCustomer_ReturnsToken(t *testing.T) {
	d := newDeps(t)
	req := models.RegistrationRequest{Name: "Vova", Email: "vova@test.com", Age: 22, Gender: models.GenderMale, Password: "pw"}
	d.customers.EXPECT().Register(gomock.Any(), req).Return(vovaView(), nil)
	d.auth.EXPECT().IssueToken(gomock.Any(), "vova@test.com").Return(tokenFor("vova@test.com", "a.b.c"), nil)

	rr := d.do(t, http.MethodPost, "/api/v1/customers", req, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "a.b.c", rr.Body.String())
	assert.Equal(t, "Bearer a.b.c", rr.Header().Get("Authorization"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestRegisterCustomer_Duplicate(t *testing.T) {
	d := newDeps(t)
	d.customers.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.CustomerView{}, &service.Error{Kind: service.ErrDuplicateEmail, Message: "email already taken"})
	d.auth.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Times(0)

	rr := d.do(t, http.MethodPost, "/api/v1/customers", models.RegistrationRequest{Email: "vova@test.com"}, nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	apiErr := decodeAPIError(t, rr)
	assert.Equal(t, "email already taken", apiErr.Message)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "/api/v1/customers", apiErr.Path)
	assert.False(t, apiErr.Timestamp.IsZero())
}

func TestRegisterCustomer_InvalidJSON(t *testing.T) {
	d := newDeps(t)
	d.customers.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	rr := d.do(t, http.MethodPost, "/api/v1/customers", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid JSON was passed", decodeAPIError(t, rr).Message)
}

func TestRegisterCustomer_TokenFailure(t *testing.T) {
	d := newDeps(t)
	d.customers.EXPECT().Register(gomock.Any(), gomock.Any()).Return(vovaView(), nil)
	d.auth.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := d.do(t, http.MethodPost, "/api/v1/customers", models.RegistrationRequest{}, nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal server error", decodeAPIError(t, rr).Message)
}

// ─────────────────────────────────────────────
// GET /api/v1/customers, GET /api/v1/customers/{id}
// ─────────────────────────────────────────────

func TestListCustomers(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().ListAll(gomock.Any()).Return([]models.CustomerView{vovaView()}, nil)

	rr := d.do(t, http.MethodGet, "/api/v1/customers", nil, bearer("good"))

	require.Equal(t, http.StatusOK, rr.Code)
	var views []models.CustomerView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	assert.Equal(t, []models.CustomerView{vovaView()}, views)
}

func TestGetCustomer(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(vovaView(), nil)

	rr := d.do(t, http.MethodGet, "/api/v1/customers/1", nil, bearer("good"))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "vova@test.com", body["username"])
	assert.Equal(t, []any{"ROLE_USER"}, body["roles"])
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, body, "PasswordHash")
}

func TestGetCustomer_NotFound(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().GetByID(gomock.Any(), int64(99)).
		Return(models.CustomerView{}, &service.Error{Kind: service.ErrNotFound, Message: "customer with id [99] not found"})

	rr := d.do(t, http.MethodGet, "/api/v1/customers/99", nil, bearer("good"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "customer with id [99] not found", decodeAPIError(t, rr).Message)
}

func TestCustomerRoutes_InvalidID(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		for _, id := range []string{"abc", "0", "-3", "99999999999999999999"} {
			t.Run(method+" "+id, func(t *testing.T) {
				d := newDeps(t)
				d.expectAuthorized()

				rr := d.do(t, method, "/api/v1/customers/"+id, "{}", bearer("good"))

				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, "invalid customer id", decodeAPIError(t, rr).Message)
			})
		}
	}
}

func TestListCustomers_InternalError(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection reset"))

	rr := d.do(t, http.MethodGet, "/api/v1/customers", nil, bearer("good"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal server error", decodeAPIError(t, rr).Message)
}

// ─────────────────────────────────────────────
// PUT /api/v1/customers/{id}
// ─────────────────────────────────────────────

func TestUpdateCustomer(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().Update(gomock.Any(), int64(1), models.UpdateRequest{Name: ptr("Vladimir")}).Return(nil)

	rr := d.do(t, http.MethodPut, "/api/v1/customers/1", `{"name":"Vladimir"}`, bearer("good"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestUpdateCustomer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", &service.Error{Kind: service.ErrNotFound, Message: "customer with id [1] not found"}, http.StatusNotFound, "customer with id [1] not found"},
		{"duplicate", &service.Error{Kind: service.ErrDuplicateEmail, Message: "email already taken"}, http.StatusConflict, "email already taken"},
		{"no-op", &service.Error{Kind: service.ErrValidation, Message: "no data changes needed"}, http.StatusBadRequest, "no data changes needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			d.expectAuthorized()
			d.customers.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(tt.err)

			rr := d.do(t, http.MethodPut, "/api/v1/customers/1", `{"email":"lena@test.com"}`, bearer("good"))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.message, decodeAPIError(t, rr).Message)
		})
	}
}

func TestUpdateCustomer_InvalidJSON(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := d.do(t, http.MethodPut, "/api/v1/customers/1", `{"age":"old"}`, bearer("good"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/v1/customers/{id}
// ─────────────────────────────────────────────

func TestDeleteCustomer(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(nil)

	rr := d.do(t, http.MethodDelete, "/api/v1/customers/5", nil, bearer("good"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().DeleteByID(gomock.Any(), int64(5)).
		Return(&service.Error{Kind: service.ErrNotFound, Message: "customer with id [5] not found"})

	rr := d.do(t, http.MethodDelete, "/api/v1/customers/5", nil, bearer("good"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlers_ReceiveSubjectInContext(t *testing.T) {
	d := newDeps(t)
	d.expectAuthorized()
	d.customers.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.CustomerView, error) {
		subject, ok := utils.GetSubjectFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "vova@test.com", subject)
		return []models.CustomerView{}, nil
	})

	rr := d.do(t, http.MethodGet, "/api/v1/customers", nil, bearer("good"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
