package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// SaltBytes is the length of a freshly generated password salt.
const SaltBytes = 16

// HashPassword returns the lowercase hex sha256(salt || password). The
// predecessor store recorded credentials in exactly this form, so the
// scheme is fixed for on-disk compatibility; it is not a KDF.
func HashPassword(password string, salt []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// HashFile streams path through SHA-256 and returns the lowercase hex
// digest, used to fingerprint captured memory images.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open image for hashing")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "hash image")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
