package crypto_test

import (
	"os"
	"path/filepath"
	"testing"

	"ramacq/internal/crypto"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := crypto.RandomBytes(crypto.KeyBytes)
	plaintext := []byte(`{"users":[{"username":"admin"}]}`)

	nonce, ciphertext, err := crypto.Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	got, err := crypto.Decrypt(nonce, ciphertext, key)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(got) != string(plaintext) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	key := crypto.RandomBytes(crypto.KeyBytes)
	nonce, ciphertext, err := crypto.Encrypt([]byte("secret"), key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := crypto.Decrypt(nonce, ciphertext, crypto.RandomBytes(crypto.KeyBytes)); err == nil {
		t.Fatal("expected error with wrong key")
	}
}

func TestDecrypt_BadNonceLengthIsErrorNotPanic(t *testing.T) {
	key := crypto.RandomBytes(crypto.KeyBytes)
	if _, err := crypto.Decrypt([]byte{}, []byte("junk"), key); err == nil {
		t.Fatal("expected error for empty nonce")
	}
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	a := crypto.HashPassword("admin123", []byte("salt-a"))
	b := crypto.HashPassword("admin123", []byte("salt-b"))
	if a == b {
		t.Fatal("different salts must produce different digests")
	}
	if a != crypto.HashPassword("admin123", []byte("salt-a")) {
		t.Fatal("digest must be deterministic for the same salt")
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.raw")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := crypto.HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	const want = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Fatalf("sha256 mismatch: got %s", got)
	}
}
