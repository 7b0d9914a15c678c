package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-customer-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates an RS256 signed JWT.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the customer email
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Returns an error if issuer, subject or key are empty or the duration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("self", "vova@gmail.com", 8*time.Hour, time.Now(), privateKey)
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, now time.Time, key *rsa.PrivateKey) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || key == nil {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: signed}, nil
}

// ValidateAndParseJWTToken verifies the RS256 signature of tokenString with key
// and checks the issuer and expiration claims.
//
// now is used as the validation clock; pass time.Now in production code.
// The returned token carries the verified claims and the original signed string.
func ValidateAndParseJWTToken(tokenString string, key *rsa.PublicKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	if key == nil {
		return models.Token{}, errors.New("public key is nil")
	}

	var claims models.Token
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	claims.SignedString = tokenString
	return claims, nil
}

// ParseSubjectUnverified reads the "sub" claim without checking the signature
// or expiration. The result must never be used for authorization.
func ParseSubjectUnverified(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return "", err
	}

	return token.Claims.GetSubject()
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
