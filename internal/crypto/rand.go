package crypto

import "crypto/rand"

// RandomBytes returns n bytes from the system CSPRNG. It panics if the
// source fails, which on supported platforms means the process environment
// is unusable anyway.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto: system random source failed: " + err.Error())
	}
	return b
}
