package store

import (
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ramacq/internal/domain"
)

const (
	evidenceFile    = "evidence.json.enc"
	evidenceKeyName = "evidence"
)

// EvidenceStore is the append-only chain-of-custody record of captured
// memory images, backed by one encrypted document. The mutex spans each
// full read-modify-write cycle so concurrent AddImage calls never lose a
// record.
type EvidenceStore struct {
	store *SecureStore
	mu    sync.Mutex
	log   *logrus.Logger
}

// NewEvidenceStore opens (or initialises) the evidence store under dir,
// loading its key from dir/keys. A missing backing file is seeded with an
// empty record list so later reads take the normal encrypted path.
func NewEvidenceStore(dir string, logger *logrus.Logger) (*EvidenceStore, error) {
	if logger == nil {
		logger = logrus.New()
	}
	key, err := NewKeyManager(filepath.Join(dir, "keys")).LoadKey(evidenceKeyName)
	if err != nil {
		return nil, err
	}
	s := &EvidenceStore{
		store: NewSecureStore(filepath.Join(dir, evidenceFile), key),
		log:   logger,
	}
	if !s.store.Exists() {
		if err := s.store.Write([]domain.MemoryImage{}); err != nil {
			return nil, errors.Wrap(err, "initialise evidence store")
		}
	}
	return s, nil
}

// ListImages returns all recorded images in capture order.
func (s *EvidenceStore) ListImages() ([]domain.MemoryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// AddImage appends one image record. The record is immutable once stored.
func (s *EvidenceStore) AddImage(image domain.MemoryImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	images, err := s.read()
	if err != nil {
		return err
	}
	return s.store.Write(append(images, image))
}

// Clear removes every record, leaving a valid empty document.
func (s *EvidenceStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Write([]domain.MemoryImage{})
}

func (s *EvidenceStore) read() ([]domain.MemoryImage, error) {
	images, status, err := Read(s.store, []domain.MemoryImage{})
	s.logStatus(status)
	return images, err
}

func (s *EvidenceStore) logStatus(status ReadStatus) {
	switch status {
	case ReadMigrated:
		s.log.WithField("path", s.store.Path()).
			Warn("migrated legacy plaintext evidence store to encrypted envelope")
	case ReadRecovered:
		s.log.WithField("path", s.store.Path()).
			Warn("evidence store unreadable, continuing with an empty record set")
	}
}

// Compile-time assertion that EvidenceStore implements domain.EvidenceStore.
var _ domain.EvidenceStore = (*EvidenceStore)(nil)
