package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// SealedKeypair represents an ML-KEM-768 keypair for the sealed channel.
type SealedKeypair struct {
	// PublicKey is the raw ML-KEM-768 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateSealedKeypair creates a new ML-KEM-768 keypair.
func GenerateSealedKeypair() (*SealedKeypair, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &SealedKeypair{
		PublicKey:    pubBytes,
		SecretKey:    privBytes,
		PublicKeyB64: ToBase64URL(pubBytes),
	}, nil
}

// SealedKeypairFromSecretKey reconstructs a keypair from the secret key.
// The public key is embedded in the secret key at offset 1152.
func SealedKeypairFromSecretKey(secretKey []byte) (*SealedKeypair, error) {
	if len(secretKey) != KEMSecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	publicKey := make([]byte, KEMPublicKeySize)
	copy(publicKey, secretKey[kemPublicKeyOffset:kemPublicKeyOffset+KEMPublicKeySize])

	return &SealedKeypair{
		PublicKey:    publicKey,
		SecretKey:    secretKey,
		PublicKeyB64: ToBase64URL(publicKey),
	}, nil
}

// Encapsulate generates a fresh shared secret for the recipient public key
// and returns the KEM ciphertext alongside it.
func Encapsulate(publicKey []byte) (ctKem, sharedSecret []byte, err error) {
	if len(publicKey) != KEMPublicKeySize {
		return nil, nil, ErrInvalidPublicKeySize
	}

	var pub mlkem768.PublicKey
	if err := pub.Unpack(publicKey); err != nil {
		return nil, nil, fmt.Errorf("unpack public key: %w", err)
	}

	seed, err := RandomBytes(mlkem768.EncapsulationSeedSize)
	if err != nil {
		return nil, nil, err
	}

	ctKem = make([]byte, KEMCiphertextSize)
	sharedSecret = make([]byte, KEMSharedKeySize)
	pub.EncapsulateTo(ctKem, sharedSecret, seed)

	return ctKem, sharedSecret, nil
}

// Decapsulate recovers the shared secret from the KEM ciphertext.
func (k *SealedKeypair) Decapsulate(ctKem []byte) ([]byte, error) {
	if len(ctKem) != KEMCiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var priv mlkem768.PrivateKey
	if err := priv.Unpack(k.SecretKey); err != nil {
		return nil, fmt.Errorf("unpack secret key: %w", err)
	}

	sharedSecret := make([]byte, KEMSharedKeySize)
	priv.DecapsulateTo(sharedSecret, ctKem)

	return sharedSecret, nil
}
