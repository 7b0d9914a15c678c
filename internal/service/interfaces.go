package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-customer-service/models"
)

// CustomerService is the customer use-case layer.
type CustomerService interface {
	ListAll(ctx context.Context) ([]models.CustomerView, error)
	GetByID(ctx context.Context, id int64) (models.CustomerView, error)
	Register(ctx context.Context, req models.RegistrationRequest) (models.CustomerView, error)
	Update(ctx context.Context, id int64, req models.UpdateRequest) error
	DeleteByID(ctx context.Context, id int64) error
}

// AuthService authenticates customers and manages their tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	IssueToken(ctx context.Context, subject string) (models.Token, error)
	IssueRefreshToken(ctx context.Context, subject string) (models.Token, error)
	ValidateToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TokenService signs and verifies RS256 JWTs.
type TokenService interface {
	IssueAccessToken(subject string) (models.Token, error)
	IssueRefreshToken(subject string) (models.Token, error)
	ValidateToken(tokenString string) (models.Token, error)
	// ParseSubject reads the subject without verifying the token; for logging only.
	ParseSubject(tokenString string) (string, bool)
}

// PasswordHasher hashes and verifies customer passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// AppInfoService reports build metadata and readiness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
	CheckHealth(ctx context.Context) error
}

// HealthChecker is implemented by backends that can be pinged.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// CustomerServiceWrapper decorates a CustomerService with extra behaviour.
type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService
}
