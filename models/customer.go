// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Gender is the customer's gender as stored and exchanged over the API.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Customer is a registered customer.
//
// ID is assigned by the store on insert and never changes afterwards.
// Email is unique across all customers and doubles as the login name.
// PasswordHash is a bcrypt digest; it is never serialized.
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	Gender       Gender `json:"gender"`
	PasswordHash string `json:"-"`
}
