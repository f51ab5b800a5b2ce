// Package domain defines the core record types shared across ramacq:
// authenticated users, captured memory images, and the store and service
// interfaces the rest of the application is wired against.
//
// The package has no dependencies on storage, crypto, or tool
// orchestration; it only describes the data that flows between them.
package domain
