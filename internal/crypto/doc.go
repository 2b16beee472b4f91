// Package crypto provides the cryptographic primitives behind the data
// protection layer. It implements authenticated symmetric encryption,
// password-based and KEM-based key derivation, message authentication,
// one-way hashing, and two asymmetric channels.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for protecting record fields. Provides confidentiality and integrity.
//
//   - PBKDF2-SHA-512 (RFC 8018): Password-based key derivation with a fixed
//     iteration count of 100,000 for password-protected envelopes.
//
//   - HMAC-SHA-256 (RFC 2104): Keyed message authentication for tamper
//     evidence and salted one-way digests.
//
//   - RSA-2048 with OAEP-SHA-256: Classical asymmetric channel for
//     cross-party secret exchange, PEM-encoded key material.
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation for the
//     sealed channel. Provides 192-bit classical and quantum security.
//
//   - ML-DSA-65 (NIST FIPS 204): Post-quantum signatures for sealed-channel
//     sender attestation.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation from KEM shared secrets with
//     domain separation.
//
// # Security Model
//
// All decryption paths verify the authentication tag before releasing any
// plaintext; a failed check surfaces as [ErrDecryptionFailed] with no
// partial output. Tag and digest comparisons are constant-time. Error
// messages never include key material.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing attackers
// to recover the authentication key and forge messages. Callers must let
// this package generate nonces via [RandomBytes].
//
// Sealed-channel signature verification MUST be performed BEFORE
// decapsulation. Decrypting unauthenticated ciphertext may expose the
// system to chosen-ciphertext attacks. Always use [VerifySealedSignature]
// before [OpenSealed] when a signature is present.
//
// # Base64 Encoding
//
// Envelope fields (nonces, tags, ciphertexts, keys) are encoded as URL-safe
// base64 without padding (RFC 4648 §5) via [ToBase64URL]/[FromBase64URL].
// [DecodeBase64] is a lenient decoder for values that crossed a persistence
// boundary under a different convention.
package crypto
