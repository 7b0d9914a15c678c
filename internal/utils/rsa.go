package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// rsaKeyBits is the modulus size of generated key pairs.
const rsaKeyBits = 2048

// RSAKeyPair holds the signing key and its public counterpart.
type RSAKeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// LoadRSAKeyPair reads PEM encoded keys from disk.
// Both paths empty yields a freshly generated pair that lives only as long as the process.
func LoadRSAKeyPair(privateKeyPath, publicKeyPath string) (RSAKeyPair, error) {
	if privateKeyPath == "" && publicKeyPath == "" {
		return GenerateRSAKeyPair()
	}

	privatePEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return RSAKeyPair{}, fmt.Errorf("error reading private key: %w", err)
	}
	publicPEM, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return RSAKeyPair{}, fmt.Errorf("error reading public key: %w", err)
	}

	return ParseRSAKeyPair(privatePEM, publicPEM)
}

// ParseRSAKeyPair decodes PEM encoded keys and checks that they belong together.
func ParseRSAKeyPair(privatePEM, publicPEM []byte) (RSAKeyPair, error) {
	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return RSAKeyPair{}, fmt.Errorf("error parsing private key: %w", err)
	}
	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return RSAKeyPair{}, fmt.Errorf("error parsing public key: %w", err)
	}
	if !private.PublicKey.Equal(public) {
		return RSAKeyPair{}, errors.New("public key does not match private key")
	}

	return RSAKeyPair{Private: private, Public: public}, nil
}

// GenerateRSAKeyPair creates a new 2048-bit key pair.
func GenerateRSAKeyPair() (RSAKeyPair, error) {
	private, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return RSAKeyPair{}, fmt.Errorf("error generating RSA key: %w", err)
	}

	return RSAKeyPair{Private: private, Public: &private.PublicKey}, nil
}
