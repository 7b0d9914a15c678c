package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/mock"
	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/internal/validators"
	"github.com/MKhiriev/go-customer-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedService(t *testing.T) (*mock.MockCustomerService, service.CustomerService) {
	t.Helper()
	inner := mock.NewMockCustomerService(gomock.NewController(t))
	wrapped := service.NewCustomerValidationService(validators.NewCustomerValidator(), logger.Nop()).Wrap(inner)
	return inner, wrapped
}

func TestCustomerValidationService_Register_Invalid(t *testing.T) {
	inner, svc := newValidatedService(t)
	inner.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	req := registration()
	req.Gender = "UNKNOWN"
	_, err := svc.Register(context.Background(), req)

	require.ErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, err.Error(), "field gender")
}

func TestCustomerValidationService_Register_Valid_Delegates(t *testing.T) {
	inner, svc := newValidatedService(t)
	inner.EXPECT().Register(gomock.Any(), registration()).Return(models.NewCustomerView(vova()), nil)

	view, err := svc.Register(context.Background(), registration())

	require.NoError(t, err)
	assert.Equal(t, int64(1), view.ID)
}

func TestCustomerValidationService_Update_Invalid(t *testing.T) {
	inner, svc := newValidatedService(t)
	inner.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.Update(context.Background(), 1, models.UpdateRequest{Email: ptr("nope")})

	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCustomerValidationService_Update_Valid_Delegates(t *testing.T) {
	inner, svc := newValidatedService(t)
	req := models.UpdateRequest{Age: ptr(40)}
	inner.EXPECT().Update(gomock.Any(), int64(3), req).Return(nil)

	assert.NoError(t, svc.Update(context.Background(), 3, req))
}

func TestCustomerValidationService_Update_ValidatesPresentFieldsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCustomerService(ctrl)
	validator := mock.NewMockValidator(ctrl)
	svc := service.NewCustomerValidationService(validator, logger.Nop()).Wrap(inner)

	req := models.UpdateRequest{Email: ptr("vladimir@gmail.com"), Gender: ptr(models.GenderMale)}
	validator.EXPECT().Validate(gomock.Any(), req, validators.FieldEmail, validators.FieldGender).Return(nil)
	inner.EXPECT().Update(gomock.Any(), int64(2), req).Return(nil)

	assert.NoError(t, svc.Update(context.Background(), 2, req))
}

func TestCustomerValidationService_Update_EmptySkipsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCustomerService(ctrl)
	validator := mock.NewMockValidator(ctrl)
	svc := service.NewCustomerValidationService(validator, logger.Nop()).Wrap(inner)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	inner.EXPECT().Update(gomock.Any(), int64(2), models.UpdateRequest{}).
		Return(&service.Error{Kind: service.ErrValidation, Message: "no data changes found"})

	assert.ErrorIs(t, svc.Update(context.Background(), 2, models.UpdateRequest{}), service.ErrValidation)
}

func TestCustomerValidationService_PassThrough(t *testing.T) {
	inner, svc := newValidatedService(t)
	inner.EXPECT().ListAll(gomock.Any()).Return([]models.CustomerView{}, nil)
	inner.EXPECT().GetByID(gomock.Any(), int64(5)).Return(models.CustomerView{ID: 5}, nil)
	inner.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(nil)

	_, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	view, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.ID)
	assert.NoError(t, svc.DeleteByID(context.Background(), 5))
}
