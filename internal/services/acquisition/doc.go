// Package acquisition coordinates RAM image capture with WinPmem: it
// runs the capture tool, verifies that a plausible image was produced,
// fingerprints it with SHA-256, and returns the chain-of-custody record
// for the evidence store.
package acquisition
