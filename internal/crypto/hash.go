package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
)

// Digest computes a one-way hash of data using the named algorithm.
// Supported algorithms are "sha256" and "sha512".
func Digest(algorithm string, data []byte) ([]byte, error) {
	switch algorithm {
	case "sha256":
		sum := sha256.Sum256(data)
		return sum[:], nil
	case "sha512":
		sum := sha512.Sum512(data)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// SaltedDigest computes a keyed digest of data with the salt as the HMAC
// key. The salt is not secret; it exists so identical inputs produce
// distinct digests.
func SaltedDigest(data, salt []byte) []byte {
	return MAC(salt, data)
}

// VerifySaltedDigest recomputes the salted digest and compares in constant
// time. Constant-time comparison is used even though the digest is not a
// secret by itself: callers feed this credential-class inputs.
func VerifySaltedDigest(data, salt, digest []byte) bool {
	return hmac.Equal(SaltedDigest(data, salt), digest)
}
