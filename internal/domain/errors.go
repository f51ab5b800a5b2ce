package domain

import "github.com/pkg/errors"

// Domain-invariant violations reported by the auth service. Storage
// corruption is never surfaced through these; it is recovered inside the
// store layer.
var (
	// ErrUsernameRequired is returned when an upsert carries an empty username.
	ErrUsernameRequired = errors.New("username is required")

	// ErrPasswordRequired is returned when a brand-new user is created
	// without a password.
	ErrPasswordRequired = errors.New("password is required for new users")

	// ErrUnknownUser is returned when the named user does not exist.
	ErrUnknownUser = errors.New("user does not exist")

	// ErrLastAdmin is returned when a delete would remove the final
	// Admin account.
	ErrLastAdmin = errors.New("at least one admin account must remain")
)
