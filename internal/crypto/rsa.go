package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// GenerateRSAKeyPair generates a 2048-bit RSA key pair. The private key is
// PEM-encoded in PKCS#1 form, the public key in PKIX form. The caller owns
// both; this package retains no copy.
func GenerateRSAKeyPair() (privatePEM, publicPEM []byte, err error) {
	key, err := rsa.GenerateKey(reader(), RSAKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("generate RSA key: %w", err)
	}

	privatePEM = pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal public key: %w", err)
	}

	publicPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubBytes,
	})

	return privatePEM, publicPEM, nil
}

// ParseRSAPrivateKey parses a PEM-encoded RSA private key. Both PKCS#1 and
// PKCS#8 encodings are accepted.
func ParseRSAPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, ErrInvalidPEM
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrInvalidPEM)
	}

	return key, nil
}

// ParseRSAPublicKey parses a PEM-encoded RSA public key. Both PKIX and
// PKCS#1 encodings are accepted.
func ParseRSAPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, ErrInvalidPEM
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", ErrInvalidPEM)
		}
		return key, nil
	}

	key, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}

	return key, nil
}

// MaxRSAPlaintext returns the largest plaintext the key can encrypt under
// OAEP-SHA-256.
func MaxRSAPlaintext(pub *rsa.PublicKey) int {
	return pub.Size() - 2*sha256.Size - 2
}

// EncryptRSA encrypts plaintext with RSA-OAEP (SHA-256). Plaintexts above
// the modulus-derived bound fail with ErrPayloadTooLarge rather than silent
// truncation.
func EncryptRSA(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	if limit := MaxRSAPlaintext(pub); len(plaintext) > limit {
		return nil, fmt.Errorf("%w: got %d bytes, limit %d", ErrPayloadTooLarge, len(plaintext), limit)
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), reader(), pub, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("RSA encrypt: %w", err)
	}

	return ciphertext, nil
}

// DecryptRSA decrypts an RSA-OAEP (SHA-256) ciphertext. Any failure maps to
// ErrDecryptionFailed; OAEP errors are deliberately opaque.
func DecryptRSA(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, priv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
