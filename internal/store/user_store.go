package store

import (
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ramacq/internal/domain"
)

const (
	usersFile    = "users.json.enc"
	usersKeyName = "users"
)

// userDocument is the stored shape: one object wrapping the record list,
// matching what the predecessor format wrote.
type userDocument struct {
	Users []domain.UserRecord `json:"users"`
}

// UserStore persists workstation accounts as one encrypted document. It
// offers whole-collection replace only; the auth service layers upsert and
// delete semantics on top.
type UserStore struct {
	store *SecureStore
	mu    sync.Mutex
	log   *logrus.Logger
}

// NewUserStore opens (or initialises) the user store under dir, loading
// its key from dir/keys. The evidence and user stores never share a key.
func NewUserStore(dir string, logger *logrus.Logger) (*UserStore, error) {
	if logger == nil {
		logger = logrus.New()
	}
	key, err := NewKeyManager(filepath.Join(dir, "keys")).LoadKey(usersKeyName)
	if err != nil {
		return nil, err
	}
	s := &UserStore{
		store: NewSecureStore(filepath.Join(dir, usersFile), key),
		log:   logger,
	}
	if !s.store.Exists() {
		if err := s.store.Write(userDocument{Users: []domain.UserRecord{}}); err != nil {
			return nil, errors.Wrap(err, "initialise user store")
		}
	}
	return s, nil
}

// ListUsers returns the stored records in stored order.
func (s *UserStore) ListUsers() ([]domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, status, err := Read(s.store, userDocument{Users: []domain.UserRecord{}})
	s.logStatus(status)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// SaveUsers replaces the entire stored record set.
func (s *UserStore) SaveUsers(users []domain.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Write(userDocument{Users: users})
}

func (s *UserStore) logStatus(status ReadStatus) {
	switch status {
	case ReadMigrated:
		s.log.WithField("path", s.store.Path()).
			Warn("migrated legacy plaintext user store to encrypted envelope")
	case ReadRecovered:
		s.log.WithField("path", s.store.Path()).
			Warn("user store unreadable, continuing with an empty account set")
	}
}

// Compile-time assertion that UserStore implements domain.UserStore.
var _ domain.UserStore = (*UserStore)(nil)
