package utils

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
)

func writePEM(t *testing.T, k RSAKeyPair) (string, string) {
	t.Helper()
	dir := t.TempDir()

	privDER, err := x509.MarshalPKCS8PrivateKey(k.Private)
	if err != nil {
		t.Fatalf("marshal private: %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(k.Public)
	if err != nil {
		t.Fatalf("marshal public: %v", err)
	}

	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	if err := os.WriteFile(privPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pubPath, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}), 0o600); err != nil {
		t.Fatal(err)
	}
	return privPath, pubPath
}

func TestGenerateRSAKeyPair(t *testing.T) {
	k, _ := keys(t)

	if k.Private == nil || k.Public == nil {
		t.Fatal("expected both keys to be set")
	}
	if k.Private.N.BitLen() != rsaKeyBits {
		t.Errorf("expected %d bits, got %d", rsaKeyBits, k.Private.N.BitLen())
	}
	if !k.Private.PublicKey.Equal(k.Public) {
		t.Error("expected public key to match private key")
	}
}

func TestLoadRSAKeyPair_EmptyPathsGenerate(t *testing.T) {
	k, err := LoadRSAKeyPair("", "")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if k.Private == nil || k.Public == nil {
		t.Fatal("expected generated keys")
	}
}

func TestLoadRSAKeyPair_FromFiles(t *testing.T) {
	k, _ := keys(t)
	privPath, pubPath := writePEM(t, k)

	loaded, err := LoadRSAKeyPair(privPath, pubPath)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !loaded.Private.Equal(k.Private) {
		t.Error("loaded private key differs")
	}
	if !loaded.Public.Equal(k.Public) {
		t.Error("loaded public key differs")
	}
}

func TestLoadRSAKeyPair_MissingFile(t *testing.T) {
	if _, err := LoadRSAKeyPair("/does/not/exist.pem", "/does/not/exist.pub"); err == nil {
		t.Fatal("expected error for missing files")
	}
}

func TestParseRSAKeyPair_Mismatch(t *testing.T) {
	k, other := keys(t)
	privPath, _ := writePEM(t, k)
	_, otherPubPath := writePEM(t, other)

	if _, err := LoadRSAKeyPair(privPath, otherPubPath); err == nil {
		t.Fatal("expected error for mismatching keys")
	}
}

func TestParseRSAKeyPair_Garbage(t *testing.T) {
	if _, err := ParseRSAKeyPair([]byte("nope"), []byte("nope")); err == nil {
		t.Fatal("expected error for garbage PEM")
	}
}
