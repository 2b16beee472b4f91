package dataprotect

import (
	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// SealedEnvelope is the wire form of a sealed-channel message.
type SealedEnvelope = crypto.SealedEnvelope

// SealedKeyPair is an ML-KEM-768 keypair for the sealed channel.
type SealedKeyPair = crypto.SealedKeypair

// SigningKeyPair is an ML-DSA-65 keypair for sealed-channel sender
// attestation.
type SigningKeyPair = crypto.SigningKeypair

// GenerateSealedKeyPair creates a new ML-KEM-768 keypair for receiving
// sealed messages. Ownership transfers entirely to the caller.
func GenerateSealedKeyPair() (*SealedKeyPair, error) {
	kp, err := crypto.GenerateSealedKeypair()
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}
	return kp, nil
}

// SealedKeyPairFromSecretKey reconstructs a sealed-channel keypair from
// its secret key bytes.
func SealedKeyPairFromSecretKey(secretKey []byte) (*SealedKeyPair, error) {
	kp, err := crypto.SealedKeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, &ValidationError{Err: err}
	}
	return kp, nil
}

// GenerateSigningKeyPair creates a new ML-DSA-65 keypair for attesting
// sealed envelopes.
func GenerateSigningKeyPair() (*SigningKeyPair, error) {
	kp, err := crypto.GenerateSigningKeypair()
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}
	return kp, nil
}

// Seal encrypts a value to the recipient's sealed-channel public key:
// ML-KEM-768 encapsulation, HKDF-SHA-512 key derivation, AES-256-GCM.
// Unlike the RSA channel there is no payload size bound.
func Seal(v any, recipientPublicKey []byte) (*SealedEnvelope, error) {
	data, err := serialize(v)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	env, err := crypto.Seal(data, recipientPublicKey)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return env, nil
}

// SealSigned seals a value and attaches an ML-DSA-65 signature over the
// envelope transcript so the recipient can authenticate the sender.
func SealSigned(v any, recipientPublicKey []byte, signer *SigningKeyPair) (*SealedEnvelope, error) {
	env, err := Seal(v, recipientPublicKey)
	if err != nil {
		return nil, err
	}

	if err := crypto.SignSealed(env, signer); err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return env, nil
}

// OpenSealed decrypts a sealed envelope with the recipient keypair. It
// performs no signature verification; use OpenSealedVerified for signed
// envelopes.
func OpenSealed(env *SealedEnvelope, keypair *SealedKeyPair) (*Plaintext, error) {
	plaintext, err := crypto.OpenSealed(env, keypair)
	if err != nil {
		return nil, wrapDecryptionError(err)
	}

	return newPlaintext(plaintext), nil
}

// OpenSealedVerified verifies the envelope's signature before decrypting.
// When pinnedSenderKey is non-nil the embedded sender key must match it
// exactly; a mismatch surfaces as a SignatureVerificationError with
// IsKeyMismatch set. Verification happens strictly before decapsulation.
func OpenSealedVerified(env *SealedEnvelope, keypair *SealedKeyPair, pinnedSenderKey []byte) (*Plaintext, error) {
	if err := crypto.VerifySealedSignature(env, pinnedSenderKey); err != nil {
		return nil, wrapSignatureError(err)
	}

	return OpenSealed(env, keypair)
}
