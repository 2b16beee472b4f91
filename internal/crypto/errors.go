package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a symmetric key has the wrong size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when the authentication tag size is invalid.
	ErrInvalidTagSize = errors.New("invalid authentication tag size")

	// ErrDecryptionFailed is returned when decryption fails. It is
	// deliberately identical for tag mismatch, malformed ciphertext, and
	// wrong key or password.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnknownAlgorithm is returned when an unrecognized hash algorithm
	// is requested.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrPayloadTooLarge is returned when a plaintext exceeds the RSA-OAEP
	// size bound for the key modulus.
	ErrPayloadTooLarge = errors.New("payload exceeds asymmetric size limit")

	// ErrInvalidPEM is returned when PEM key material cannot be parsed.
	ErrInvalidPEM = errors.New("invalid PEM key material")

	// ErrInvalidSecretKeySize is returned when a KEM or signing secret key
	// has the wrong size.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when a KEM or signing public key
	// has the wrong size.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when a KEM ciphertext has the
	// wrong size.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrSignatureVerificationFailed is returned when sealed-channel
	// signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrSenderKeyMismatch is returned when the sealed envelope's sender
	// public key does not match the pinned key supplied by the caller.
	ErrSenderKeyMismatch = errors.New("sender public key mismatch: envelope key differs from pinned key")

	// ErrMissingSignature is returned when verified opening is requested
	// on an unsigned sealed envelope.
	ErrMissingSignature = errors.New("sealed envelope carries no signature")
)
