package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"ramacq/internal/crypto"
)

// KeyManager resolves raw symmetric keys for named stores. Each store name
// maps to one key file (<dir>/<name>.key) holding exactly 32 random bytes,
// created on first use. Keys are never rotated; a key file of any other
// length indicates tampering or corruption and is a fatal configuration
// error.
type KeyManager struct {
	dir string
}

// NewKeyManager returns a KeyManager rooted at dir. The directory is
// created on first LoadKey, not here.
func NewKeyManager(dir string) *KeyManager { return &KeyManager{dir: dir} }

// LoadKey returns the 32-byte key for name, generating and persisting a
// fresh one if no key file exists yet. Safe to call repeatedly.
func (m *KeyManager) LoadKey(name string) ([]byte, error) {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create key directory")
	}
	path := filepath.Join(m.dir, name+".key")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, crypto.RandomBytes(crypto.KeyBytes), 0o600); err != nil {
			return nil, errors.Wrap(err, "write key file")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "stat key file")
	}

	key, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read key file")
	}
	if len(key) != crypto.KeyBytes {
		return nil, errors.Errorf("key at %s must be exactly %d bytes, got %d", path, crypto.KeyBytes, len(key))
	}
	return key, nil
}
