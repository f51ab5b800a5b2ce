package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ramacq/internal/store"
)

func TestKeyManager_CreatesAndReloadsKey(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")
	km := store.NewKeyManager(dir)

	key, err := km.LoadKey("evidence")
	require.NoError(t, err)
	require.Len(t, key, 32)

	// Idempotent: a second load returns the same material.
	again, err := km.LoadKey("evidence")
	require.NoError(t, err)
	require.Equal(t, key, again)

	// Distinct names get distinct keys.
	other, err := km.LoadKey("users")
	require.NoError(t, err)
	require.NotEqual(t, key, other)
}

func TestKeyManager_RejectsWrongLengthKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.key"), []byte("short"), 0o600))

	_, err := store.NewKeyManager(dir).LoadKey("users")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly 32 bytes")
}
