package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// SigningKeypair represents an ML-DSA-65 keypair for sealed-channel
// sender attestation.
type SigningKeypair struct {
	// PublicKey is the raw ML-DSA-65 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-DSA-65 secret key bytes.
	SecretKey []byte
}

// GenerateSigningKeypair creates a new ML-DSA-65 keypair.
func GenerateSigningKeypair() (*SigningKeypair, error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, err
	}

	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &SigningKeypair{
		PublicKey: pubBytes,
		SecretKey: privBytes,
	}, nil
}

// SignMessage produces an ML-DSA-65 signature over message.
func SignMessage(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != SigSecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal secret key: %w", err)
	}

	sig := make([]byte, SignatureSize)
	if err := mldsa65.SignTo(&priv, message, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	return sig, nil
}

// VerifyMessage verifies an ML-DSA-65 signature over message.
func VerifyMessage(publicKey, message, signature []byte) error {
	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return fmt.Errorf("unmarshal public key: %w", err)
	}

	if !mldsa65.Verify(&pub, message, nil, signature) {
		return ErrSignatureVerificationFailed
	}

	return nil
}
