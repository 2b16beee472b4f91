package dataprotect

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// EnvMasterKey is the environment variable NewFromEnv reads the master key
// from.
const EnvMasterKey = "DATA_PROTECT_MASTER_KEY"

// Protector performs all symmetric operations of the data protection
// layer. It holds the process-wide master key as immutable state injected
// at construction; there is no module-level singleton. A Protector is safe
// for concurrent use.
type Protector struct {
	masterKey   []byte
	fieldSuffix string
}

// New creates a Protector from a hex-encoded 32-byte master key.
//
// An empty masterKeyHex is a configuration error unless [WithEphemeralKey]
// is given: previously persisted envelopes would become permanently
// unrecoverable under a silently generated key.
func New(masterKeyHex string, opts ...Option) (*Protector, error) {
	cfg := &protectorConfig{
		fieldSuffix: defaultFieldSuffix,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var masterKey []byte
	switch {
	case masterKeyHex == "" && cfg.allowEphemeralKey:
		key, err := crypto.RandomBytes(crypto.KeySize)
		if err != nil {
			return nil, &ConfigError{Err: err}
		}
		masterKey = key
	case masterKeyHex == "":
		return nil, &ConfigError{Err: ErrMissingMasterKey}
	default:
		key, err := hex.DecodeString(masterKeyHex)
		if err != nil || len(key) != crypto.KeySize {
			return nil, &ConfigError{Err: ErrMalformedMasterKey}
		}
		masterKey = key
	}

	return &Protector{
		masterKey:   masterKey,
		fieldSuffix: cfg.fieldSuffix,
	}, nil
}

// NewFromEnv creates a Protector from the DATA_PROTECT_MASTER_KEY
// environment variable.
func NewFromEnv(opts ...Option) (*Protector, error) {
	return New(os.Getenv(EnvMasterKey), opts...)
}

// Encrypt encrypts a value under the master key. Strings encrypt as-is;
// structured values are serialized to canonical JSON first. A fresh
// 16-byte nonce is generated per call.
func (p *Protector) Encrypt(v any) (*Envelope, error) {
	return p.EncryptWithKey(v, nil)
}

// EncryptWithKey encrypts a value under the supplied 32-byte key, or the
// master key when key is nil.
func (p *Protector) EncryptWithKey(v any, key []byte) (*Envelope, error) {
	if key == nil {
		key = p.masterKey
	}

	data, err := serialize(v)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	nonce, err := crypto.RandomBytes(crypto.EnvelopeNonceSize)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	ciphertext, tag, err := crypto.SealAESGCM(key, nonce, nil, data)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return &Envelope{
		Ciphertext: crypto.ToBase64URL(ciphertext),
		Nonce:      crypto.ToBase64URL(nonce),
		Tag:        crypto.ToBase64URL(tag),
	}, nil
}

// Decrypt verifies and decrypts an envelope under the master key. The
// authentication tag is checked before any plaintext is returned.
func (p *Protector) Decrypt(env *Envelope) (*Plaintext, error) {
	return p.DecryptWithKey(env, nil)
}

// DecryptWithKey verifies and decrypts an envelope under the supplied key,
// or the master key when key is nil. Malformed envelopes, tampered data,
// and a wrong key all surface as the same DecryptionError.
func (p *Protector) DecryptWithKey(env *Envelope, key []byte) (*Plaintext, error) {
	if key == nil {
		key = p.masterKey
	}

	nonce, ciphertext, tag, err := decodeEnvelope(env)
	if err != nil {
		return nil, wrapDecryptionError(err)
	}

	plaintext, err := crypto.OpenAESGCM(key, nonce, nil, ciphertext, tag)
	if err != nil {
		return nil, wrapDecryptionError(err)
	}

	return newPlaintext(plaintext), nil
}

// EncryptWithPassword encrypts a value under a key derived from the
// password with a fresh 64-byte salt. The salt travels with the envelope;
// it is required to re-derive the key and is not secret.
func (p *Protector) EncryptWithPassword(v any, password string) (*Envelope, error) {
	salt, err := crypto.RandomBytes(crypto.PasswordSaltSize)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	env, err := p.EncryptWithKey(v, crypto.DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}

	env.Salt = crypto.ToBase64URL(salt)
	return env, nil
}

// DecryptWithPassword re-derives the key from the password and the
// envelope's salt and decrypts. A wrong password fails exactly like
// tampered data; the two are intentionally indistinguishable.
func (p *Protector) DecryptWithPassword(env *Envelope, password string) (*Plaintext, error) {
	if env.Salt == "" {
		return nil, wrapDecryptionError(fmt.Errorf("envelope has no salt"))
	}

	salt, err := crypto.DecodeBase64(env.Salt)
	if err != nil {
		return nil, wrapDecryptionError(err)
	}

	return p.DecryptWithKey(env, crypto.DeriveKey(password, salt))
}

// Sign computes an HMAC-SHA-256 tag over the canonical serialization of a
// payload, keyed by the master key. The tag is URL-safe base64.
func (p *Protector) Sign(v any) (string, error) {
	return p.SignWithKey(v, nil)
}

// SignWithKey computes the tag under the supplied key, or the master key
// when key is nil.
func (p *Protector) SignWithKey(v any, key []byte) (string, error) {
	if key == nil {
		key = p.masterKey
	}

	data, err := serialize(v)
	if err != nil {
		return "", &ValidationError{Err: err}
	}

	return crypto.ToBase64URL(crypto.MAC(key, data)), nil
}

// Verify recomputes the tag for a payload and compares it to tag in
// constant time. Any mismatch, including a malformed tag, returns false;
// verification never errors on well-formed mismatches.
func (p *Protector) Verify(v any, tag string) bool {
	return p.VerifyWithKey(v, tag, nil)
}

// VerifyWithKey verifies the tag under the supplied key, or the master key
// when key is nil.
func (p *Protector) VerifyWithKey(v any, tag string, key []byte) bool {
	if key == nil {
		key = p.masterKey
	}

	data, err := serialize(v)
	if err != nil {
		return false
	}

	rawTag, err := crypto.DecodeBase64(tag)
	if err != nil {
		return false
	}

	return crypto.VerifyMAC(key, data, rawTag)
}
