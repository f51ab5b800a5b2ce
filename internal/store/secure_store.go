package store

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"ramacq/internal/crypto"
)

// envelope is the on-disk unit: one encrypted JSON document per file.
// Both fields are standard base64.
type envelope struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// ReadStatus tells the caller how a document was obtained. The
// default-returning contract is the same for Empty and Recovered; the
// status exists so a higher layer can warn operators about silent
// recovery instead of mistaking it for an empty store.
type ReadStatus int

const (
	// ReadOK means the envelope decrypted and parsed normally.
	ReadOK ReadStatus = iota
	// ReadEmpty means the file was absent or blank; the default was returned.
	ReadEmpty
	// ReadMigrated means a legacy plaintext file was parsed and rewritten
	// in place as an encrypted envelope.
	ReadMigrated
	// ReadRecovered means the file was unreadable as either format; the
	// default was returned.
	ReadRecovered
)

func (s ReadStatus) String() string {
	switch s {
	case ReadOK:
		return "ok"
	case ReadEmpty:
		return "empty"
	case ReadMigrated:
		return "migrated"
	case ReadRecovered:
		return "recovered"
	}
	return "unknown"
}

// SecureStore persists exactly one JSON document, encrypted, at a fixed
// path. Writes always replace the whole envelope; there are no partial
// updates. SecureStore itself is not concurrency-safe — the domain stores
// built on it serialize access with their own locks.
type SecureStore struct {
	path string
	key  []byte
}

// NewSecureStore returns a store writing to path with the given 32-byte key.
func NewSecureStore(path string, key []byte) *SecureStore {
	return &SecureStore{path: path, key: key}
}

// Path returns the backing file path.
func (s *SecureStore) Path() string { return s.path }

// Exists reports whether the backing file is present on disk.
func (s *SecureStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the stored document, or def when the file is absent, blank,
// or unreadable. A file written by the predecessor format (plaintext JSON,
// no envelope) is parsed directly and upgraded in place through Write.
// Corruption is never an error; only I/O failures propagate.
func Read[T any](s *SecureStore, def T) (T, ReadStatus, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return def, ReadEmpty, errors.Wrap(err, "read store file")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return def, ReadEmpty, nil
	}

	if doc, ok := decryptDocument[T](raw, s.key); ok {
		return doc, ReadOK, nil
	}

	// Assume legacy plaintext JSON from the pre-encryption format. The
	// decoder is strict so an undecryptable envelope is not mistaken for
	// a legacy object document.
	legacy, ok := decodeStrict[T](raw)
	if !ok {
		return def, ReadRecovered, nil
	}
	if err := s.Write(legacy); err != nil {
		return legacy, ReadMigrated, errors.Wrap(err, "re-encrypt legacy store")
	}
	return legacy, ReadMigrated, nil
}

// Write serializes v, encrypts it under a fresh nonce, and atomically
// replaces the file with the new envelope. Parent directories are created
// as needed.
func (s *SecureStore) Write(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	nonce, ciphertext, err := crypto.Encrypt(payload, s.key)
	if err != nil {
		return err
	}
	env := envelope{
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}
	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode envelope")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create store directory")
	}
	return errors.Wrap(writeFile(s.path, raw, 0o600), "write store file")
}

// decryptDocument runs the full envelope path: parse, base64-decode,
// decrypt, parse inner document. Any failure reports !ok so the caller can
// fall back to the legacy format.
func decryptDocument[T any](raw, key []byte) (T, bool) {
	var zero T
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, false
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return zero, false
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return zero, false
	}
	plaintext, err := crypto.Decrypt(iv, ciphertext, key)
	if err != nil {
		return zero, false
	}
	var doc T
	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return zero, false
	}
	return doc, true
}

func decodeStrict[T any](raw []byte) (T, bool) {
	var doc T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil || dec.More() {
		var zero T
		return zero, false
	}
	return doc, true
}
