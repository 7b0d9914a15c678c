// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationRequest is the payload of POST /api/v1/customers.
// Password is plaintext and is hashed before it reaches the store.
type RegistrationRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Gender   Gender `json:"gender" validate:"required,gender"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateRequest is the payload of PUT /api/v1/customers/{id}.
// A nil field means "leave unchanged".
type UpdateRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,gt=0"`
	Gender *Gender `json:"gender,omitempty" validate:"omitempty,gender"`
}

// Empty reports whether no field is set at all.
func (r UpdateRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Age == nil && r.Gender == nil
}

// LoginRequest is the payload of POST /api/v1/auth/login.
// Username is the customer's email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
