package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives a 32-byte AES key from a password and salt using
// PBKDF2-SHA-512 with a fixed iteration count. Deterministic: the same
// (password, salt) pair always yields the same key, which is what lets a
// password-derived envelope decrypt after a restart.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, PBKDF2Iterations, KeySize, sha512.New)
}

// HKDF derives a key of the requested length using HKDF-SHA-512.
func HKDF(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
