package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

func newGCM(key []byte, nonceSize int) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if nonceSize != EnvelopeNonceSize && nonceSize != SealedNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d or %d", ErrInvalidNonceSize, nonceSize, EnvelopeNonceSize, SealedNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCMWithNonceSize(block, nonceSize)
}

// SealAESGCM encrypts plaintext using AES-256-GCM and returns the
// ciphertext and the 16-byte authentication tag separately. The nonce must
// be freshly generated per call with [RandomBytes]; nonce reuse under the
// same key breaks the cipher.
func SealAESGCM(key, nonce, aad, plaintext []byte) (ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key, len(nonce))
	if err != nil {
		return nil, nil, err
	}

	sealed := gcm.Seal(nil, nonce, plaintext, aad)
	split := len(sealed) - TagSize
	return sealed[:split], sealed[split:], nil
}

// OpenAESGCM verifies the authentication tag and decrypts the ciphertext.
// The tag is checked before any plaintext is returned; on any failure the
// result is ErrDecryptionFailed with no partial output.
func OpenAESGCM(key, nonce, aad, ciphertext, tag []byte) ([]byte, error) {
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidTagSize, len(tag), TagSize)
	}

	gcm, err := newGCM(key, len(nonce))
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
