package dataprotect

import (
	"encoding/hex"
	"errors"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// DefaultHashAlgorithm is the algorithm Hash uses when given an empty
// algorithm name.
const DefaultHashAlgorithm = "sha256"

// SaltedHash is a salted keyed digest together with the salt needed to
// verify it. Both fields are hex-encoded; neither is secret.
type SaltedHash struct {
	Digest string `json:"digest"`
	Salt   string `json:"salt"`
}

// Hash computes a one-way hex digest of data. Supported algorithms are
// "sha256" (default) and "sha512"; anything else is a ValidationError.
func Hash(data string, algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = DefaultHashAlgorithm
	}

	digest, err := crypto.Digest(algorithm, []byte(data))
	if err != nil {
		if errors.Is(err, crypto.ErrUnknownAlgorithm) {
			return "", &ValidationError{Err: ErrUnknownAlgorithm}
		}
		return "", &ValidationError{Err: err}
	}

	return hex.EncodeToString(digest), nil
}

// HashWithSalt computes a keyed digest of data with the salt as key,
// generating a random 16-byte salt when salt is nil. Use it for
// credential-class secrets that must never be reversible.
func HashWithSalt(data string, salt []byte) (*SaltedHash, error) {
	if salt == nil {
		var err error
		salt, err = crypto.RandomBytes(crypto.HashSaltSize)
		if err != nil {
			return nil, &EncryptionError{Err: err}
		}
	}

	return &SaltedHash{
		Digest: hex.EncodeToString(crypto.SaltedDigest([]byte(data), salt)),
		Salt:   hex.EncodeToString(salt),
	}, nil
}

// VerifyHash recomputes the salted digest for data and compares it to the
// stored digest in constant time. Malformed hex in either argument returns
// false.
func VerifyHash(data string, digestHex string, saltHex string) bool {
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}

	return crypto.VerifySaltedDigest([]byte(data), salt, digest)
}
