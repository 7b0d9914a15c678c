package utils

import (
	"crypto/rsa"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	testKeysOnce sync.Once
	testKeys     RSAKeyPair
	otherKeys    RSAKeyPair
)

func keys(t *testing.T) (RSAKeyPair, RSAKeyPair) {
	t.Helper()
	testKeysOnce.Do(func() {
		var err error
		if testKeys, err = GenerateRSAKeyPair(); err != nil {
			panic(err)
		}
		if otherKeys, err = GenerateRSAKeyPair(); err != nil {
			panic(err)
		}
	})
	return testKeys, otherKeys
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestGenerateJWTToken_Success(t *testing.T) {
	k, _ := keys(t)

	token, err := GenerateJWTToken("self", "vova@gmail.com", 8*time.Hour, fixedNow(), k.Private)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if strings.Count(token.SignedString, ".") != 2 {
		t.Errorf("expected compact JWS, got %s", token.SignedString)
	}
	if token.Issuer != "self" {
		t.Errorf("expected issuer self, got %s", token.Issuer)
	}
	if token.Subject != "vova@gmail.com" {
		t.Errorf("expected subject vova@gmail.com, got %s", token.Subject)
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt.Time); got != 8*time.Hour {
		t.Errorf("expected 8h lifetime, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	k, _ := keys(t)

	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      *rsa.PrivateKey
	}{
		{"empty issuer", "", "a@b.c", time.Hour, k.Private},
		{"empty subject", "iss", "", time.Hour, k.Private},
		{"zero duration", "iss", "a@b.c", 0, k.Private},
		{"negative duration", "iss", "a@b.c", -time.Minute, k.Private},
		{"nil key", "iss", "a@b.c", time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, fixedNow(), tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	k, _ := keys(t)
	token, err := GenerateJWTToken("self", "vova@gmail.com", time.Hour, fixedNow(), k.Private)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, k.Public, "self", fixedNow)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Subject != "vova@gmail.com" {
		t.Errorf("expected subject vova@gmail.com, got %s", parsed.Subject)
	}
	if parsed.SignedString != token.SignedString {
		t.Error("expected signed string to be preserved")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	k, _ := keys(t)
	token, _ := GenerateJWTToken("self", "vova@gmail.com", 10*time.Minute, fixedNow(), k.Private)

	later := func() time.Time { return fixedNow().Add(11 * time.Minute) }
	_, err := ValidateAndParseJWTToken(token.SignedString, k.Public, "self", later)

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	k, other := keys(t)
	token, _ := GenerateJWTToken("self", "vova@gmail.com", time.Hour, fixedNow(), k.Private)

	_, err := ValidateAndParseJWTToken(token.SignedString, other.Public, "self", fixedNow)

	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	k, _ := keys(t)
	token, _ := GenerateJWTToken("someone-else", "vova@gmail.com", time.Hour, fixedNow(), k.Private)

	_, err := ValidateAndParseJWTToken(token.SignedString, k.Public, "self", fixedNow)

	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Fatalf("expected ErrTokenInvalidIssuer, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsHMAC(t *testing.T) {
	k, _ := keys(t)
	claims := jwt.RegisteredClaims{
		Issuer:    "self",
		Subject:   "vova@gmail.com",
		ExpiresAt: jwt.NewNumericDate(fixedNow().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, k.Public, "self", fixedNow)

	if err == nil {
		t.Fatal("expected HS256 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_RequiresExpiration(t *testing.T) {
	k, _ := keys(t)
	claims := jwt.RegisteredClaims{Issuer: "self", Subject: "vova@gmail.com"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.Private)

	_, err := ValidateAndParseJWTToken(signed, k.Public, "self", fixedNow)

	if !errors.Is(err, jwt.ErrTokenRequiredClaimMissing) {
		t.Fatalf("expected ErrTokenRequiredClaimMissing, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	k, _ := keys(t)

	if _, err := ValidateAndParseJWTToken("not-a-token", k.Public, "self", fixedNow); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateAndParseJWTToken_NilKey(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("a.b.c", nil, "self", fixedNow); err == nil {
		t.Fatal("expected error for nil key")
	}
}

func TestParseSubjectUnverified(t *testing.T) {
	k, _ := keys(t)
	token, _ := GenerateJWTToken("self", "vova@gmail.com", time.Minute, fixedNow().Add(-time.Hour), k.Private)

	subject, err := ParseSubjectUnverified(token.SignedString)

	if err != nil {
		t.Fatalf("expected no error for expired token, got: %v", err)
	}
	if subject != "vova@gmail.com" {
		t.Errorf("expected vova@gmail.com, got %s", subject)
	}
}

func TestParseSubjectUnverified_Malformed(t *testing.T) {
	if _, err := ParseSubjectUnverified("garbage"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got err=%v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
