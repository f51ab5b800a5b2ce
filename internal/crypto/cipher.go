package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeyBytes is the required length of a store key.
	KeyBytes = chacha20poly1305.KeySize
	// NonceBytes is the length of the per-write nonce stored in the envelope.
	NonceBytes = chacha20poly1305.NonceSize
)

// Encrypt seals plaintext under a 32-byte key with a fresh random nonce.
// The nonce is returned separately; the envelope persists it beside the
// ciphertext.
func Encrypt(plaintext, key []byte) (nonce, ciphertext []byte, err error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, errors.Wrap(err, "init cipher")
	}
	nonce = make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, errors.Wrap(err, "generate nonce")
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt opens ciphertext sealed by Encrypt. A wrong key or tampered
// ciphertext fails authentication and returns an error. The nonce length
// is checked up front because the underlying AEAD panics on a bad nonce,
// and corrupted envelopes must degrade, not crash.
func Decrypt(nonce, ciphertext, key []byte) ([]byte, error) {
	if len(nonce) != NonceBytes {
		return nil, errors.Errorf("invalid nonce length %d", len(nonce))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "init cipher")
	}
	pt, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open ciphertext")
	}
	return pt, nil
}
