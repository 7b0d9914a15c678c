// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/store"
	"github.com/MKhiriev/go-customer-service/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgCustomerNotFound  = "customer with id [%d] not found"
	msgEmailAlreadyTaken = "email already taken"
	msgNoDataChanges     = "no data changes needed"
	msgPasswordTooLong   = "password must be at most 72 bytes long"
)

// customerService implements CustomerService on top of a CustomerRepository.
//
// Existence checks and the following mutation are not atomic. The unique
// constraint on email is the last line: a duplicate slipping through the
// check still surfaces as ErrDuplicateEmail.
type customerService struct {
	customerRepository store.CustomerRepository
	hasher             PasswordHasher

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, hasher PasswordHasher, logger *logger.Logger) CustomerService {
	logger.Info().Msg("customer service created")
	return &customerService{
		customerRepository: customerRepository,
		hasher:             hasher,
		logger:             logger,
	}
}

func (s *customerService) ListAll(ctx context.Context) ([]models.CustomerView, error) {
	log := logger.FromContext(ctx)

	customers, err := s.customerRepository.SelectAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*customerService.ListAll").Msg("error selecting customers")
		return nil, fmt.Errorf("error selecting customers: %w", err)
	}

	views := make([]models.CustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, models.NewCustomerView(customer))
	}

	return views, nil
}

func (s *customerService) GetByID(ctx context.Context, id int64) (models.CustomerView, error) {
	log := logger.FromContext(ctx)

	customer, err := s.customerRepository.SelectByID(ctx, id)
	if errors.Is(err, store.ErrCustomerNotFound) {
		log.Debug().Int64("id", id).Msg("customer not found")
		return models.CustomerView{}, newError(ErrNotFound, msgCustomerNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*customerService.GetByID").Int64("id", id).Msg("error selecting customer")
		return models.CustomerView{}, fmt.Errorf("error selecting customer: %w", err)
	}

	return models.NewCustomerView(customer), nil
}

// Register stores a new customer with a hashed password. The returned view
// carries the assigned id.
func (s *customerService) Register(ctx context.Context, req models.RegistrationRequest) (models.CustomerView, error) {
	log := logger.FromContext(ctx)

	exists, err := s.customerRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*customerService.Register").Msg("error checking email")
		return models.CustomerView{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		log.Info().Str("email", req.Email).Msg("registration with taken email")
		return models.CustomerView{}, newError(ErrDuplicateEmail, msgEmailAlreadyTaken)
	}

	hash, err := s.hasher.Hash(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.CustomerView{}, newError(ErrValidation, msgPasswordTooLong)
	}
	if err != nil {
		log.Err(err).Str("func", "*customerService.Register").Msg("error hashing password")
		return models.CustomerView{}, fmt.Errorf("error hashing password: %w", err)
	}

	customer, err := s.customerRepository.Insert(ctx, models.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Age:          req.Age,
		Gender:       req.Gender,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Warn().Str("email", req.Email).Msg("email taken between check and insert")
		return models.CustomerView{}, newError(ErrDuplicateEmail, msgEmailAlreadyTaken)
	}
	if err != nil {
		log.Err(err).Str("func", "*customerService.Register").Msg("error inserting customer")
		return models.CustomerView{}, fmt.Errorf("error inserting customer: %w", err)
	}

	log.Info().Int64("id", customer.ID).Msg("customer registered")
	return models.NewCustomerView(customer), nil
}

func (s *customerService) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.mustExist(ctx, id); err != nil {
		return err
	}

	if err := s.customerRepository.DeleteByID(ctx, id); err != nil {
		log.Err(err).Str("func", "*customerService.DeleteByID").Int64("id", id).Msg("error deleting customer")
		return fmt.Errorf("error deleting customer: %w", err)
	}

	log.Info().Int64("id", id).Msg("customer deleted")
	return nil
}

// Update applies every present field of req that differs from the stored
// value. A new email must not belong to another customer. When nothing
// differs the call fails with ErrValidation and nothing is written.
func (s *customerService) Update(ctx context.Context, id int64, req models.UpdateRequest) error {
	log := logger.FromContext(ctx)

	if err := s.mustExist(ctx, id); err != nil {
		return err
	}

	customer, err := s.customerRepository.SelectByID(ctx, id)
	if errors.Is(err, store.ErrCustomerNotFound) {
		return newError(ErrNotFound, msgCustomerNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*customerService.Update").Int64("id", id).Msg("error selecting customer")
		return fmt.Errorf("error selecting customer: %w", err)
	}

	changed := false

	if req.Name != nil && *req.Name != customer.Name {
		customer.Name = *req.Name
		changed = true
	}

	if req.Email != nil && *req.Email != customer.Email {
		taken, err := s.customerRepository.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			log.Err(err).Str("func", "*customerService.Update").Msg("error checking email")
			return fmt.Errorf("error checking email: %w", err)
		}
		if taken {
			return newError(ErrDuplicateEmail, msgEmailAlreadyTaken)
		}
		customer.Email = *req.Email
		changed = true
	}

	if req.Age != nil && *req.Age != customer.Age {
		customer.Age = *req.Age
		changed = true
	}

	if req.Gender != nil && *req.Gender != customer.Gender {
		customer.Gender = *req.Gender
		changed = true
	}

	if !changed {
		return newError(ErrValidation, msgNoDataChanges)
	}

	err = s.customerRepository.Update(ctx, customer)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return newError(ErrDuplicateEmail, msgEmailAlreadyTaken)
	}
	if err != nil {
		log.Err(err).Str("func", "*customerService.Update").Int64("id", id).Msg("error updating customer")
		return fmt.Errorf("error updating customer: %w", err)
	}

	log.Info().Int64("id", id).Msg("customer updated")
	return nil
}

func (s *customerService) mustExist(ctx context.Context, id int64) error {
	exists, err := s.customerRepository.ExistsByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerService.mustExist").Int64("id", id).Msg("error checking customer")
		return fmt.Errorf("error checking customer: %w", err)
	}
	if !exists {
		return newError(ErrNotFound, msgCustomerNotFound, id)
	}
	return nil
}
