package auth

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ramacq/internal/crypto"
	"ramacq/internal/domain"
	"ramacq/internal/util/memzero"
)

// Default accounts seeded into an empty store so the workstation is
// usable on first launch. Operators are expected to change these.
const (
	defaultAdminUser        = "admin"
	defaultAdminPassword    = "admin123"
	defaultAdminID          = "u_admin"
	defaultInvestigator     = "investigator"
	defaultInvestigatorPass = "invest123"
	defaultInvestigatorID   = "u_inv"
)

// Service authenticates operators and manages the account set. All state
// changes go through the in-memory record map and are persisted as a
// whole through the user store before the mutation is considered done.
type Service struct {
	store domain.UserStore
	log   *logrus.Logger

	mu      sync.Mutex
	records map[string]domain.UserRecord
	order   []string // usernames in insertion order, for stable listing
}

// New loads all accounts from the store. An empty store is seeded with
// the default admin and investigator accounts.
func New(store domain.UserStore, logger *logrus.Logger) (*Service, error) {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Service{
		store:   store,
		log:     logger,
		records: make(map[string]domain.UserRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	if len(s.records) == 0 {
		if err := s.seedDefaults(); err != nil {
			return nil, err
		}
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Authenticate verifies a username/password pair. A missing user and a
// wrong password both return ok=false with no further detail, and the
// hash comparison is constant-time, so the two failure modes are not
// distinguishable.
func (s *Service) Authenticate(username, password string) (domain.User, bool) {
	s.mu.Lock()
	record, exists := s.records[username]
	s.mu.Unlock()
	if !exists {
		return domain.User{}, false
	}

	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return domain.User{}, false
	}
	defer memzero.Zero(salt)
	computed := crypto.HashPassword(password, salt)
	if !hmac.Equal([]byte(record.PasswordHash), []byte(computed)) {
		return domain.User{}, false
	}
	return record.User(), true
}

// ListUsers returns a copy of every account record in insertion order.
func (s *Service) ListUsers() []domain.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.UserRecord, 0, len(s.order))
	for _, username := range s.order {
		out = append(out, s.records[username])
	}
	return out
}

// UpsertUser creates or updates an account. New accounts need a password;
// for existing accounts an empty password keeps the stored salt and hash
// so name, role, and access can change independently of credentials.
// Nothing is mutated when an invariant is violated or persistence fails.
func (s *Service) UpsertUser(u domain.Upsert) error {
	username := strings.TrimSpace(u.Username)
	if username == "" {
		return domain.ErrUsernameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.records[username]
	if !exists && u.Password == "" {
		return domain.ErrPasswordRequired
	}

	var saltB64, passwordHash string
	if u.Password != "" {
		salt := crypto.RandomBytes(crypto.SaltBytes)
		saltB64 = base64.StdEncoding.EncodeToString(salt)
		passwordHash = crypto.HashPassword(u.Password, salt)
	} else {
		saltB64 = existing.Salt
		passwordHash = existing.PasswordHash
	}

	userID := existing.UserID
	if !exists {
		userID = newUserID()
	}
	name := u.Name
	if name == "" {
		name = username
	}

	record := domain.UserRecord{
		Username:     username,
		Name:         name,
		Role:         u.Role,
		UserID:       userID,
		Salt:         saltB64,
		PasswordHash: passwordHash,
		FullAccess:   u.FullAccess,
	}

	if err := s.persistWith(func() {
		if !exists {
			s.order = append(s.order, username)
		}
		s.records[username] = record
	}); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"username": username, "role": u.Role}).
		Info("account saved")
	return nil
}

// DeleteUser removes an account. Deleting the last remaining Admin is
// refused so the workstation can never lock out administration entirely.
func (s *Service) DeleteUser(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[username]
	if !exists {
		return errors.Wrapf(domain.ErrUnknownUser, "%q", username)
	}
	if record.Role.IsAdmin() && s.adminCount() <= 1 {
		return domain.ErrLastAdmin
	}

	if err := s.persistWith(func() {
		delete(s.records, username)
		for i, name := range s.order {
			if name == username {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}); err != nil {
		return err
	}
	s.log.WithField("username", username).Info("account deleted")
	return nil
}

// persistWith applies mutate to the in-memory state, then writes the full
// set through the store. On a write failure the in-memory state is rolled
// back so memory and disk never diverge.
func (s *Service) persistWith(mutate func()) error {
	prevRecords := make(map[string]domain.UserRecord, len(s.records))
	for k, v := range s.records {
		prevRecords[k] = v
	}
	prevOrder := append([]string(nil), s.order...)

	mutate()

	users := make([]domain.UserRecord, 0, len(s.order))
	for _, username := range s.order {
		users = append(users, s.records[username])
	}
	if err := s.store.SaveUsers(users); err != nil {
		s.records = prevRecords
		s.order = prevOrder
		return errors.Wrap(err, "persist accounts")
	}
	return nil
}

func (s *Service) adminCount() int {
	n := 0
	for _, record := range s.records {
		if record.Role.IsAdmin() {
			n++
		}
	}
	return n
}

func (s *Service) load() error {
	users, err := s.store.ListUsers()
	if err != nil {
		return errors.Wrap(err, "load accounts")
	}
	s.records = make(map[string]domain.UserRecord, len(users))
	s.order = s.order[:0]
	for _, record := range users {
		if record.Username == "" {
			continue
		}
		if _, seen := s.records[record.Username]; !seen {
			s.order = append(s.order, record.Username)
		}
		s.records[record.Username] = record
	}
	return nil
}

func (s *Service) seedDefaults() error {
	defaults := []domain.UserRecord{
		newRecord(defaultAdminUser, "Administrator", domain.RoleAdmin, defaultAdminPassword, defaultAdminID, true),
		newRecord(defaultInvestigator, "Investigator", domain.RoleInvestigator, defaultInvestigatorPass, defaultInvestigatorID, false),
	}
	if err := s.store.SaveUsers(defaults); err != nil {
		return errors.Wrap(err, "seed default accounts")
	}
	s.log.Info("seeded default accounts")
	return nil
}

func newRecord(username, name string, role domain.Role, password, userID string, fullAccess bool) domain.UserRecord {
	salt := crypto.RandomBytes(crypto.SaltBytes)
	return domain.UserRecord{
		Username:     username,
		Name:         name,
		Role:         role,
		UserID:       userID,
		Salt:         base64.StdEncoding.EncodeToString(salt),
		PasswordHash: crypto.HashPassword(password, salt),
		FullAccess:   fullAccess,
	}
}

func newUserID() string {
	id := uuid.New()
	return "u_" + hex.EncodeToString(id[:])
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
