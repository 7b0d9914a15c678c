package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/utils"
	"github.com/MKhiriev/go-customer-service/models"
)

// tokenService issues and verifies RS256 tokens whose subject is the customer email.
type tokenService struct {
	// keys holds the signing key and the key used for verification.
	keys utils.RSAKeyPair

	// issuer is the "iss" claim of every issued token and the only one accepted.
	issuer string

	accessTTL  time.Duration
	refreshTTL time.Duration

	// now is the clock used for issuing and validating; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a TokenService from cfg and keys.
// Both keys must be present.
func NewTokenService(cfg config.App, keys utils.RSAKeyPair, logger *logger.Logger) (TokenService, error) {
	if keys.Private == nil || keys.Public == nil {
		return nil, ErrInvalidKeyMaterial
	}
	if !keys.Private.PublicKey.Equal(keys.Public) {
		return nil, fmt.Errorf("%w: public key does not match private key", ErrInvalidKeyMaterial)
	}

	logger.Info().
		Str("issuer", cfg.TokenIssuer).
		Dur("access_ttl", cfg.AccessTokenDuration).
		Dur("refresh_ttl", cfg.RefreshTokenDuration).
		Msg("token service created")

	return &tokenService{
		keys:       keys,
		issuer:     cfg.TokenIssuer,
		accessTTL:  cfg.AccessTokenDuration,
		refreshTTL: cfg.RefreshTokenDuration,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *tokenService) IssueAccessToken(subject string) (models.Token, error) {
	return s.issue(subject, s.accessTTL)
}

func (s *tokenService) IssueRefreshToken(subject string) (models.Token, error) {
	return s.issue(subject, s.refreshTTL)
}

func (s *tokenService) issue(subject string, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subject, ttl, s.now(), s.keys.Private)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ValidateToken checks signature, issuer and expiry and returns the claims.
func (s *tokenService) ValidateToken(tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, s.keys.Public, s.issuer, s.now)
}

func (s *tokenService) ParseSubject(tokenString string) (string, bool) {
	subject, err := utils.ParseSubjectUnverified(tokenString)
	if err != nil || subject == "" {
		return "", false
	}
	return subject, true
}
