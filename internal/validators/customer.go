package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-customer-service/models"
	"github.com/go-playground/validator"
)

// Struct field names accepted by Validate for field-level scoping.
const (
	FieldName   = "Name"
	FieldEmail  = "Email"
	FieldAge    = "Age"
	FieldGender = "Gender"
)

// tagGender is the custom tag validating models.Gender values.
const tagGender = "gender"

// CustomerValidator validates registration and update payloads.
type CustomerValidator struct {
	validate *validator.Validate
}

// NewCustomerValidator returns a Validator with the "gender" rule registered
// and field errors reported under their JSON names.
func NewCustomerValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	// registration cannot fail: the tag is not a reserved one and the func is non-nil
	_ = v.RegisterValidation(tagGender, validGender)

	return &CustomerValidator{validate: v}
}

// Validate accepts RegistrationRequest and UpdateRequest (value or pointer).
// Anything else yields ErrUnsupportedType.
func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.RegistrationRequest:
		return v.validateStruct(ctx, value, fields...)
	case models.UpdateRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.UpdateRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CustomerValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if reflect.ValueOf(obj).IsNil() {
		return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		structType := reflect.TypeOf(obj).Elem()
		for _, field := range fields {
			if _, ok := structType.FieldByName(field); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return fmt.Errorf("%w: %s", ErrInvalidData, describe(fieldErrors))
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must not be empty", err.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters long", err.Field(), err.Param()))
		case tagGender:
			msgs = append(msgs, fmt.Sprintf("field %s must be one of %s, %s", err.Field(), models.GenderMale, models.GenderFemale))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

func validGender(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return models.Gender(field.String()).Valid()
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}
