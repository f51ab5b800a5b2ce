package domain

import "strings"

// Role classifies what an operator is allowed to do in the workstation.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleInvestigator   Role = "Investigator"
	RoleViewer         Role = "Viewer"
	RoleWarrantOfficer Role = "WarrantOfficer"
)

// String returns the string form of the role.
func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role is the administrator role. Stored
// records from older versions carry mixed casing, so the comparison is
// case-insensitive.
func (r Role) IsAdmin() bool { return strings.EqualFold(string(r), string(RoleAdmin)) }

// User is the identity handed to callers after a successful
// authentication. It never carries credential material.
type User struct {
	ID   string `json:"user_id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// UserRecord is the persisted shape of one workstation account. Salt is
// base64, PasswordHash is the lowercase hex sha256(salt||password).
type UserRecord struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	UserID       string `json:"user_id"`
	Salt         string `json:"salt"`
	PasswordHash string `json:"password_hash"`
	FullAccess   bool   `json:"full_access"`
}

// User projects the record down to the caller-facing identity.
func (r UserRecord) User() User {
	return User{ID: r.UserID, Name: r.Name, Role: r.Role}
}
