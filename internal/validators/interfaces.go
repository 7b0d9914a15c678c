// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound customer payloads before they reach
// the service layer.
//
// Rules are declared as `validate` struct tags on the models and evaluated
// by go-playground/validator. The custom "gender" tag accepts only the
// genders known to models.Gender.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values.
// Optional field names restrict validation to that subset of struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
