// Package store implements ramacq's encrypted local persistence layer.
//
// The building blocks, bottom up:
//   - KeyManager resolves (and lazily creates) a raw 256-bit key file per
//     named store under a private key directory.
//   - SecureStore holds exactly one JSON document per file, sealed inside
//     an {iv, ciphertext} envelope. Reads transparently migrate legacy
//     plaintext files written before encryption existed, and degrade to
//     the caller's default on corruption instead of failing.
//   - EvidenceStore and UserStore are the two domain stores built on it:
//     append-only memory-image records and full-replace account records.
//     Each owns its own key and its own mutex spanning the whole
//     read-modify-write cycle, so in-process callers never lose updates.
//
// Stored files live under the application home directory; key files under
// its keys/ subdirectory. All files are written atomically via a temp
// file and rename, with 0o600 modes.
package store
