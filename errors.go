package dataprotect

import (
	"errors"
	"fmt"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingMasterKey is returned when no master key is configured and
	// the ephemeral-key opt-in is off.
	ErrMissingMasterKey = errors.New("master key is required")

	// ErrMalformedMasterKey is returned when the configured master key is
	// not 32 hex-encoded bytes.
	ErrMalformedMasterKey = errors.New("master key must be 64 hex characters")

	// ErrDecryptionFailed is returned when decryption fails. Tag mismatch,
	// malformed envelope, wrong key, and wrong password are deliberately
	// indistinguishable to avoid a password-guessing oracle.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPayloadTooLarge is returned when a plaintext exceeds the
	// asymmetric channel's size bound.
	ErrPayloadTooLarge = errors.New("payload exceeds asymmetric size limit")

	// ErrInvalidFieldPath is returned for malformed dot-separated paths.
	ErrInvalidFieldPath = errors.New("invalid field path")

	// ErrUnknownAlgorithm is returned for unsupported hash algorithms.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrSignatureInvalid is returned when sealed-envelope signature
	// verification fails.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrMissingSignature is returned when verified opening is requested
	// on an unsigned sealed envelope.
	ErrMissingSignature = errors.New("sealed envelope carries no signature")
)

// ProtectError is implemented by all errors of this package.
type ProtectError interface {
	error
	ProtectError() // marker method
}

// ConfigError reports a fatal configuration problem at construction time,
// such as a missing or malformed master key.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("data protection config: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProtectError implements the ProtectError interface.
func (e *ConfigError) ProtectError() {}

// EncryptionError reports a failure on an encryption path. The message
// never contains key material.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// ProtectError implements the ProtectError interface.
func (e *EncryptionError) ProtectError() {}

// DecryptionError reports a failure on a decryption path: tag mismatch,
// malformed envelope, wrong key or wrong password. No partial plaintext is
// ever attached.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// ProtectError implements the ProtectError interface.
func (e *DecryptionError) ProtectError() {}

// ValidationError reports malformed caller input: a bad field path, an
// oversized asymmetric payload, an unknown hash algorithm.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProtectError implements the ProtectError interface.
func (e *ValidationError) ProtectError() {}

// SignatureVerificationError indicates potential tampering with a sealed
// envelope, or a sender key that does not match the pinned key.
type SignatureVerificationError struct {
	Message       string
	IsKeyMismatch bool
}

func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureVerificationError) Is(target error) bool {
	return target == ErrSignatureInvalid
}

// ProtectError implements the ProtectError interface.
func (e *SignatureVerificationError) ProtectError() {}

// wrapDecryptionError converts internal crypto failures into the public
// DecryptionError without distinguishing their causes.
func wrapDecryptionError(err error) error {
	if err == nil {
		return nil
	}
	return &DecryptionError{Err: ErrDecryptionFailed}
}

// wrapSignatureError converts internal signature failures to public typed
// errors so that errors.Is() checks work correctly.
func wrapSignatureError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrSenderKeyMismatch) {
		return &SignatureVerificationError{Message: err.Error(), IsKeyMismatch: true}
	}
	if errors.Is(err, crypto.ErrMissingSignature) {
		return ErrMissingSignature
	}

	return &SignatureVerificationError{Message: err.Error()}
}
