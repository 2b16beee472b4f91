package dataprotect

import (
	"errors"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// KeyPair is a freshly generated 2048-bit RSA key pair, PEM-encoded.
// Ownership transfers entirely to the caller; the package retains no copy.
type KeyPair struct {
	// PublicKey is the PKIX PEM encoding of the public key.
	PublicKey string `json:"publicKey"`
	// PrivateKey is the PKCS#1 PEM encoding of the private key.
	PrivateKey string `json:"privateKey"`
}

// GenerateKeyPair generates a new RSA key pair for cross-party secret
// exchange. This is the most CPU-intensive operation in the package.
func GenerateKeyPair() (*KeyPair, error) {
	privPEM, pubPEM, err := crypto.GenerateRSAKeyPair()
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return &KeyPair{
		PublicKey:  string(pubPEM),
		PrivateKey: string(privPEM),
	}, nil
}

// EncryptWithPublicKey encrypts a value to a PEM-encoded RSA public key
// using OAEP. The serialized payload must fit the modulus-derived bound
// (190 bytes for a 2048-bit key); oversized payloads fail with
// ErrPayloadTooLarge rather than silent truncation. The ciphertext is
// URL-safe base64.
func EncryptWithPublicKey(v any, publicKeyPEM string) (string, error) {
	pub, err := crypto.ParseRSAPublicKey([]byte(publicKeyPEM))
	if err != nil {
		return "", &ValidationError{Err: err}
	}

	data, err := serialize(v)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}

	ciphertext, err := crypto.EncryptRSA(pub, data)
	if err != nil {
		if errors.Is(err, crypto.ErrPayloadTooLarge) {
			return "", &ValidationError{Err: ErrPayloadTooLarge}
		}
		return "", &EncryptionError{Err: err}
	}

	return crypto.ToBase64URL(ciphertext), nil
}

// DecryptWithPrivateKey decrypts a ciphertext produced by
// EncryptWithPublicKey using the PEM-encoded RSA private key. The result
// carries the same JSON-or-raw typing as symmetric decryption.
func DecryptWithPrivateKey(ciphertext string, privateKeyPEM string) (*Plaintext, error) {
	priv, err := crypto.ParseRSAPrivateKey([]byte(privateKeyPEM))
	if err != nil {
		return nil, &ValidationError{Err: err}
	}

	raw, err := crypto.DecodeBase64(ciphertext)
	if err != nil {
		return nil, wrapDecryptionError(err)
	}

	plaintext, err := crypto.DecryptRSA(priv, raw)
	if err != nil {
		return nil, wrapDecryptionError(err)
	}

	return newPlaintext(plaintext), nil
}
