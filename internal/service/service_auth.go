package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/store"
	"github.com/MKhiriev/go-customer-service/models"
	"github.com/golang-jwt/jwt/v5"
)

const msgBadCredentials = "bad credentials"

// authService is the concrete implementation of AuthService.
// Customers log in with their email as username; tokens carry the email as subject.
type authService struct {
	// customerRepository resolves the username to a stored customer.
	customerRepository store.CustomerRepository

	// hasher verifies the supplied password against the stored bcrypt digest.
	hasher PasswordHasher

	// tokens signs and verifies access and refresh tokens.
	tokens TokenService

	logger *logger.Logger
}

func NewAuthService(customerRepository store.CustomerRepository, hasher PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	logger.Info().Msg("auth service created")
	return &authService{
		customerRepository: customerRepository,
		hasher:             hasher,
		tokens:             tokens,
		logger:             logger,
	}
}

// Login verifies credentials and returns an access token with the customer view.
//
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials
// with the same message.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Info().Msg("login with empty credentials")
		return models.AuthResponse{}, newError(ErrInvalidCredentials, msgBadCredentials)
	}

	customer, err := a.customerRepository.SelectByEmail(ctx, req.Username)
	if errors.Is(err, store.ErrCustomerNotFound) {
		log.Info().Str("username", req.Username).Msg("login with unknown username")
		return models.AuthResponse{}, newError(ErrInvalidCredentials, msgBadCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("customer search by email failed")
		return models.AuthResponse{}, fmt.Errorf("customer search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, customer.PasswordHash) {
		log.Info().Int64("id", customer.ID).Msg("wrong password")
		return models.AuthResponse{}, newError(ErrInvalidCredentials, msgBadCredentials)
	}

	token, err := a.IssueToken(ctx, customer.Email)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		Token:    token.SignedString,
		Customer: models.NewCustomerView(customer),
	}, nil
}

// IssueToken issues an access token for subject.
func (a *authService) IssueToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := a.tokens.IssueAccessToken(subject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueToken").Msg("error issuing access token")
		return models.Token{}, err
	}
	return token, nil
}

func (a *authService) IssueRefreshToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := a.tokens.IssueRefreshToken(subject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueRefreshToken").Msg("error issuing refresh token")
		return models.Token{}, err
	}
	return token, nil
}

// ValidateToken verifies tokenString and returns its claims.
// Expired tokens yield ErrTokenIsExpired, every other failure ErrTokenIsExpiredOrInvalid.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.ValidateToken(tokenString)
	if err == nil {
		return token, nil
	}

	event := logger.FromContext(ctx).Info().Err(err)
	if subject, ok := a.tokens.ParseSubject(tokenString); ok {
		event = event.Str("claimed_subject", subject)
	}
	event.Msg("token rejected")

	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	return models.Token{}, ErrTokenIsExpiredOrInvalid
}
