package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// EnvelopeNonceSize is the size of an envelope AES-GCM nonce in bytes.
	EnvelopeNonceSize = 16
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// PasswordSaltSize is the size of the salt attached to
	// password-derived envelopes, in bytes.
	PasswordSaltSize = 64
	// PBKDF2Iterations is the fixed iteration count for password-based
	// key derivation. Changing it breaks decryption of existing envelopes.
	PBKDF2Iterations = 100_000

	// HashSaltSize is the size of the random salt generated for salted
	// digests when the caller supplies none.
	HashSaltSize = 16

	// RSAKeyBits is the modulus size for generated RSA key pairs.
	RSAKeyBits = 2048

	// SealedNonceSize is the AES-GCM nonce size used by the sealed
	// channel, in bytes.
	SealedNonceSize = 12
	// SealedVersion is the sealed-envelope protocol version.
	SealedVersion = 1

	// KEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	KEMPublicKeySize = 1184
	// KEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	KEMSecretKeySize = 2400
	// KEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	KEMCiphertextSize = 1088
	// KEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	KEMSharedKeySize = 32

	// SigPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	SigPublicKeySize = 1952
	// SigSecretKeySize is the size of an ML-DSA-65 secret key in bytes.
	SigSecretKeySize = 4032
	// SignatureSize is the size of an ML-DSA-65 signature in bytes.
	SignatureSize = 3309

	// kemPublicKeyOffset is the byte offset where the public key is
	// embedded within an ML-KEM-768 secret key.
	kemPublicKeyOffset = 1152
)

// SealedContext is the domain-separation string used in sealed-channel
// key derivation and signature transcripts.
const SealedContext = "rwax:dataprotect:sealed:v1"
