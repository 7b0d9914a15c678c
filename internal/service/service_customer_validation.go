package service

import (
	"context"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/validators"
	"github.com/MKhiriev/go-customer-service/models"
)

// CustomerValidationService rejects malformed payloads with ErrValidation
// before delegating to the wrapped CustomerService.
type CustomerValidationService struct {
	inner     CustomerService
	validator validators.Validator

	logger *logger.Logger
}

func NewCustomerValidationService(validator validators.Validator, logger *logger.Logger) CustomerServiceWrapper {
	return &CustomerValidationService{
		validator: validator,
		logger:    logger,
	}
}

func (v *CustomerValidationService) Wrap(inner CustomerService) CustomerService {
	v.inner = inner
	return v
}

func (v *CustomerValidationService) ListAll(ctx context.Context) ([]models.CustomerView, error) {
	return v.inner.ListAll(ctx)
}

func (v *CustomerValidationService) GetByID(ctx context.Context, id int64) (models.CustomerView, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *CustomerValidationService) Register(ctx context.Context, req models.RegistrationRequest) (models.CustomerView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("invalid registration request")
		return models.CustomerView{}, newError(ErrValidation, "%s", err.Error())
	}
	return v.inner.Register(ctx, req)
}

// Update validates only the fields present in req. An empty request is
// passed through so the service reports that nothing changed.
func (v *CustomerValidationService) Update(ctx context.Context, id int64, req models.UpdateRequest) error {
	if fields := presentFields(req); len(fields) > 0 {
		if err := v.validator.Validate(ctx, req, fields...); err != nil {
			logger.FromContext(ctx).Debug().Err(err).Int64("id", id).Msg("invalid update request")
			return newError(ErrValidation, "%s", err.Error())
		}
	}
	return v.inner.Update(ctx, id, req)
}

func presentFields(req models.UpdateRequest) []string {
	var fields []string
	if req.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if req.Email != nil {
		fields = append(fields, validators.FieldEmail)
	}
	if req.Age != nil {
		fields = append(fields, validators.FieldAge)
	}
	if req.Gender != nil {
		fields = append(fields, validators.FieldGender)
	}
	return fields
}

func (v *CustomerValidationService) DeleteByID(ctx context.Context, id int64) error {
	return v.inner.DeleteByID(ctx, id)
}
