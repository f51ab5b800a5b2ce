// Package auth implements operator authentication and account management
// on top of the encrypted user store.
//
// The service keeps an in-memory map of account records that is the
// single source of truth for the session. It is loaded once at
// construction and written back through the store on every mutation, so
// the persisted set is never ahead of or behind memory.
package auth
