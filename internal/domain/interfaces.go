package domain

// EvidenceStore persists the append-only chain-of-custody record of
// captured memory images.
type EvidenceStore interface {
	ListImages() ([]MemoryImage, error)
	AddImage(image MemoryImage) error
	Clear() error
}

// UserStore persists the full set of workstation accounts. It offers
// whole-collection replace only; upsert semantics live in the auth
// service.
type UserStore interface {
	ListUsers() ([]UserRecord, error)
	SaveUsers(users []UserRecord) error
}

// Upsert carries the fields of one create-or-update of an account.
// Password is optional for existing users; an empty Password keeps the
// stored salt and hash.
type Upsert struct {
	Username   string
	Name       string
	Role       Role
	Password   string
	FullAccess bool
}

// AuthService authenticates operators and manages the account set.
type AuthService interface {
	Authenticate(username, password string) (User, bool)
	ListUsers() []UserRecord
	UpsertUser(u Upsert) error
	DeleteUser(username string) error
}
