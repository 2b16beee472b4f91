package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// SealedEnvelope is the wire form of a sealed-channel message. All byte
// fields are URL-safe base64 without padding. The format is stable: it is
// the cross-party interop surface of the sealed channel.
type SealedEnvelope struct {
	// V is the sealed-envelope protocol version.
	V int `json:"v"`
	// CtKem is the ML-KEM-768 ciphertext.
	CtKem string `json:"ct_kem"`
	// Nonce is the AES-GCM nonce.
	Nonce string `json:"nonce"`
	// Ciphertext is the AES-256-GCM encrypted content, tag included.
	Ciphertext string `json:"ciphertext"`
	// Sig is the ML-DSA-65 signature over the transcript, when the sender
	// attested the envelope.
	Sig string `json:"sig,omitempty"`
	// SenderSigPk is the sender's ML-DSA-65 public key, present with Sig.
	SenderSigPk string `json:"sender_sig_pk,omitempty"`
}

// Seal encrypts plaintext to the recipient's ML-KEM-768 public key.
//
// The scheme:
//  1. ML-KEM-768 encapsulation against the recipient key
//  2. HKDF-SHA-512 key derivation from the shared secret with domain separation
//  3. AES-256-GCM encryption under a fresh 12-byte nonce
func Seal(plaintext, recipientPublicKey []byte) (*SealedEnvelope, error) {
	ctKem, sharedSecret, err := Encapsulate(recipientPublicKey)
	if err != nil {
		return nil, err
	}

	key, err := deriveSealedKey(sharedSecret, ctKem)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	nonce, err := RandomBytes(SealedNonceSize)
	if err != nil {
		return nil, err
	}

	ciphertext, tag, err := SealAESGCM(key, nonce, nil, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return &SealedEnvelope{
		V:          SealedVersion,
		CtKem:      ToBase64URL(ctKem),
		Nonce:      ToBase64URL(nonce),
		Ciphertext: ToBase64URL(append(ciphertext, tag...)),
	}, nil
}

// OpenSealed decrypts a sealed envelope using the recipient keypair.
//
// Security: this function does NOT verify signatures. Callers MUST call
// [VerifySealedSignature] first when the envelope is signed.
func OpenSealed(env *SealedEnvelope, keypair *SealedKeypair) ([]byte, error) {
	ctKem, err := FromBase64URL(env.CtKem)
	if err != nil {
		return nil, fmt.Errorf("decode ct_kem: %w", err)
	}

	nonce, err := FromBase64URL(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}

	sealed, err := FromBase64URL(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(sealed) < TagSize {
		return nil, ErrDecryptionFailed
	}

	sharedSecret, err := keypair.Decapsulate(ctKem)
	if err != nil {
		return nil, err
	}

	key, err := deriveSealedKey(sharedSecret, ctKem)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	split := len(sealed) - TagSize
	plaintext, err := OpenAESGCM(key, nonce, nil, sealed[:split], sealed[split:])
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// SignSealed attaches an ML-DSA-65 signature over the envelope transcript.
// The sender's public key travels with the envelope so the recipient can
// verify without prior key exchange, optionally pinning it.
func SignSealed(env *SealedEnvelope, signer *SigningKeypair) error {
	ctKem, err := FromBase64URL(env.CtKem)
	if err != nil {
		return fmt.Errorf("decode ct_kem: %w", err)
	}

	nonce, err := FromBase64URL(env.Nonce)
	if err != nil {
		return fmt.Errorf("decode nonce: %w", err)
	}

	ciphertext, err := FromBase64URL(env.Ciphertext)
	if err != nil {
		return fmt.Errorf("decode ciphertext: %w", err)
	}

	transcript := buildSealedTranscript(env.V, ctKem, nonce, ciphertext, signer.PublicKey)

	sig, err := SignMessage(signer.SecretKey, transcript)
	if err != nil {
		return err
	}

	env.Sig = ToBase64URL(sig)
	env.SenderSigPk = ToBase64URL(signer.PublicKey)
	return nil
}

// VerifySealedSignature verifies the ML-DSA-65 signature on a sealed
// envelope. When pinnedSenderPk is non-nil, the envelope's embedded sender
// key must match it exactly.
//
// CRITICAL: this MUST be called BEFORE [OpenSealed] for signed envelopes.
func VerifySealedSignature(env *SealedEnvelope, pinnedSenderPk []byte) error {
	if env.Sig == "" || env.SenderSigPk == "" {
		return ErrMissingSignature
	}

	senderPk, err := FromBase64URL(env.SenderSigPk)
	if err != nil {
		return fmt.Errorf("decode sender_sig_pk: %w", err)
	}

	if pinnedSenderPk != nil && !bytes.Equal(senderPk, pinnedSenderPk) {
		return ErrSenderKeyMismatch
	}

	sig, err := FromBase64URL(env.Sig)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	ctKem, err := FromBase64URL(env.CtKem)
	if err != nil {
		return fmt.Errorf("decode ct_kem: %w", err)
	}

	nonce, err := FromBase64URL(env.Nonce)
	if err != nil {
		return fmt.Errorf("decode nonce: %w", err)
	}

	ciphertext, err := FromBase64URL(env.Ciphertext)
	if err != nil {
		return fmt.Errorf("decode ciphertext: %w", err)
	}

	transcript := buildSealedTranscript(env.V, ctKem, nonce, ciphertext, senderPk)

	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(senderPk); err != nil {
		return fmt.Errorf("unmarshal public key: %w", err)
	}

	if !mldsa65.Verify(&pub, transcript, nil, sig) {
		return ErrSignatureVerificationFailed
	}

	return nil
}

// buildSealedTranscript constructs the byte string the sender signs. Both
// sides must build it identically.
func buildSealedTranscript(version int, ctKem, nonce, ciphertext, senderPk []byte) []byte {
	transcript := []byte{byte(version)}
	transcript = append(transcript, []byte(SealedContext)...)
	transcript = append(transcript, ctKem...)
	transcript = append(transcript, nonce...)
	transcript = append(transcript, ciphertext...)
	transcript = append(transcript, senderPk...)
	return transcript
}

// deriveSealedKey performs HKDF-SHA-512 key derivation for the sealed
// channel.
//
//   - IKM: the KEM shared secret
//   - Salt: SHA-256 hash of the KEM ciphertext
//   - Info: context string || ct_kem length (4 bytes BE)
func deriveSealedKey(sharedSecret, ctKem []byte) ([]byte, error) {
	saltHash := sha256.Sum256(ctKem)

	contextBytes := []byte(SealedContext)
	ctLen := make([]byte, 4)
	binary.BigEndian.PutUint32(ctLen, uint32(len(ctKem)))

	info := make([]byte, 0, len(contextBytes)+4)
	info = append(info, contextBytes...)
	info = append(info, ctLen...)

	return HKDF(sharedSecret, saltHash[:], info, KeySize)
}
