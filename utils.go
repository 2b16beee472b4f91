package dataprotect

import (
	"crypto/subtle"
	"strings"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// SecureCompare compares two strings in constant time. It returns false
// immediately when the lengths differ, which leaks length information:
// callers for whom input length itself is sensitive should compare
// fixed-size digests of both sides (see HashWithSalt) instead of the raw
// values.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// MaskData redacts a sensitive string for display. Values no longer than
// 2x visibleChars are fully masked with a fixed-width output so the true
// length is not revealed; longer values keep their first and last
// visibleChars characters around a masked middle.
//
// The result is a display aid only and carries no cryptographic guarantee.
func MaskData(data string, visibleChars int) string {
	if visibleChars <= 0 {
		visibleChars = 4
	}

	if len(data) <= 2*visibleChars {
		return strings.Repeat("*", 2*visibleChars)
	}

	return data[:visibleChars] +
		strings.Repeat("*", len(data)-2*visibleChars) +
		data[len(data)-visibleChars:]
}

// GenerateSecureRandom returns length cryptographically secure random
// bytes as a hex string of 2x length characters.
func GenerateSecureRandom(length int) (string, error) {
	s, err := crypto.RandomHex(length)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}
	return s, nil
}

// GenerateAPIKey returns a prefixed opaque credential of the form
// "<prefix>_<32 hex chars>", backed by the secure random source.
func GenerateAPIKey(prefix string) (string, error) {
	token, err := crypto.RandomHex(16)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}
	return prefix + "_" + token, nil
}

// GenerateSecretKey returns 32 random bytes as a 64-character hex string,
// suitable as master-key material for New.
func GenerateSecretKey() (string, error) {
	s, err := crypto.RandomHex(crypto.KeySize)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}
	return s, nil
}
