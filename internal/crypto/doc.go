// Package crypto wraps the symmetric primitives the persistence layer and
// the services rely on: ChaCha20-Poly1305 sealing with raw 256-bit keys,
// a secure random source, salted password hashing, and streaming file
// digests for captured images.
//
// It implements no primitives of its own; everything is a thin layer over
// the standard library and golang.org/x/crypto.
package crypto
