package dataprotect

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

const testMasterKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestProtector(t *testing.T) *Protector {
	t.Helper()

	p, err := New(testMasterKey)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNew_MissingMasterKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingMasterKey) {
		t.Errorf("expected ErrMissingMasterKey, got %v", err)
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestNew_MalformedMasterKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"not hex", "zz0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"},
		{"too short", "0001020304"},
		{"too long", testMasterKey + "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.key); !errors.Is(err, ErrMalformedMasterKey) {
				t.Errorf("expected ErrMalformedMasterKey, got %v", err)
			}
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		t.Setenv(EnvMasterKey, testMasterKey)

		p, err := NewFromEnv()
		if err != nil {
			t.Fatalf("NewFromEnv() error = %v", err)
		}

		env, err := p.Encrypt("value")
		if err != nil {
			t.Fatal(err)
		}

		ref := newTestProtector(t)
		plaintext, err := ref.Decrypt(env)
		if err != nil {
			t.Fatalf("Decrypt() with same key error = %v", err)
		}
		if plaintext.String() != "value" {
			t.Errorf("plaintext = %q, want %q", plaintext.String(), "value")
		}
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvMasterKey, "")

		if _, err := NewFromEnv(); !errors.Is(err, ErrMissingMasterKey) {
			t.Errorf("expected ErrMissingMasterKey, got %v", err)
		}
	})
}

func TestNew_EphemeralKeyOptIn(t *testing.T) {
	p, err := New("", WithEphemeralKey())
	if err != nil {
		t.Fatalf("New() with WithEphemeralKey error = %v", err)
	}

	env, err := p.Encrypt("value")
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := p.Decrypt(env)
	if err != nil {
		t.Fatal(err)
	}
	if plaintext.String() != "value" {
		t.Error("ephemeral round trip mismatch")
	}
}

func TestEncrypt_Decrypt_RoundTrip(t *testing.T) {
	p := newTestProtector(t)

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"string", "4111-1111-1111-1111", "4111-1111-1111-1111"},
		{"empty string", "", ""},
		{"structured", map[string]any{"owner": "acct-9", "limit": float64(5000)}, map[string]any{"owner": "acct-9", "limit": float64(5000)}},
		{"array", []any{"a", "b"}, []any{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := p.Encrypt(tt.value)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			if env.Nonce == "" || env.Tag == "" {
				t.Fatal("envelope missing nonce or tag")
			}
			if env.Salt != "" {
				t.Error("master-key envelope carries a salt")
			}

			plaintext, err := p.Decrypt(env)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}

			if !reflect.DeepEqual(plaintext.Value(), tt.want) {
				t.Errorf("Value() = %#v, want %#v", plaintext.Value(), tt.want)
			}
		})
	}
}

func TestEncrypt_NonceUniqueness(t *testing.T) {
	p := newTestProtector(t)

	a, err := p.Encrypt("same plaintext")
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Encrypt("same plaintext")
	if err != nil {
		t.Fatal(err)
	}

	if a.Nonce == b.Nonce {
		t.Error("two encryptions reused the nonce")
	}
	if a.Ciphertext == b.Ciphertext {
		t.Error("two encryptions produced identical ciphertext")
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	p := newTestProtector(t)

	env, err := p.Encrypt("sensitive account number")
	if err != nil {
		t.Fatal(err)
	}

	flipB64 := func(s string) string {
		raw, err := crypto.FromBase64URL(s)
		if err != nil {
			t.Fatal(err)
		}
		raw[0] ^= 0x01
		return crypto.ToBase64URL(raw)
	}

	tests := []struct {
		name   string
		mutate func(*Envelope)
	}{
		{"ciphertext bit flip", func(e *Envelope) { e.Ciphertext = flipB64(e.Ciphertext) }},
		{"nonce bit flip", func(e *Envelope) { e.Nonce = flipB64(e.Nonce) }},
		{"tag bit flip", func(e *Envelope) { e.Tag = flipB64(e.Tag) }},
		{"truncated tag", func(e *Envelope) { e.Tag = e.Tag[:8] }},
		{"garbage nonce", func(e *Envelope) { e.Nonce = "not base64 !!!" }},
		{"empty envelope", func(e *Envelope) { *e = Envelope{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := *env
			tt.mutate(&tampered)

			plaintext, err := p.Decrypt(&tampered)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
			if plaintext != nil {
				t.Error("tampered envelope returned plaintext")
			}
		})
	}
}

func TestDecryptWithKey_WrongKey(t *testing.T) {
	p := newTestProtector(t)

	env, err := p.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}

	wrongKey := bytes.Repeat([]byte{0x42}, 32)
	if _, err := p.DecryptWithKey(env, wrongKey); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestEncryptWithPassword_RoundTrip(t *testing.T) {
	p := newTestProtector(t)

	env, err := p.EncryptWithPassword(map[string]any{"seed": "phrase"}, "hunter2")
	if err != nil {
		t.Fatalf("EncryptWithPassword() error = %v", err)
	}

	if env.Salt == "" {
		t.Fatal("password envelope has no salt")
	}

	salt, err := crypto.FromBase64URL(env.Salt)
	if err != nil {
		t.Fatal(err)
	}
	if len(salt) != crypto.PasswordSaltSize {
		t.Errorf("salt length = %d, want %d", len(salt), crypto.PasswordSaltSize)
	}

	plaintext, err := p.DecryptWithPassword(env, "hunter2")
	if err != nil {
		t.Fatalf("DecryptWithPassword() error = %v", err)
	}

	want := map[string]any{"seed": "phrase"}
	if !reflect.DeepEqual(plaintext.Value(), want) {
		t.Errorf("Value() = %#v, want %#v", plaintext.Value(), want)
	}
}

func TestDecryptWithPassword_WrongPassword(t *testing.T) {
	p := newTestProtector(t)

	env, err := p.EncryptWithPassword("secret", "correct password")
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.DecryptWithPassword(env, "wrong password")
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}

	// No password-guessing oracle: the message must not hint at a wrong
	// password as opposed to tampered data.
	if strings.Contains(strings.ToLower(err.Error()), "password") {
		t.Errorf("error message distinguishes wrong password: %q", err)
	}
}

func TestDecryptWithPassword_MissingSalt(t *testing.T) {
	p := newTestProtector(t)

	env, err := p.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.DecryptWithPassword(env, "any"); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestEncryptWithPassword_FreshSalt(t *testing.T) {
	p := newTestProtector(t)

	a, err := p.EncryptWithPassword("v", "pw")
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.EncryptWithPassword("v", "pw")
	if err != nil {
		t.Fatal(err)
	}

	if a.Salt == b.Salt {
		t.Error("two password encryptions reused the salt")
	}
}

func TestPlaintext_Typing(t *testing.T) {
	p := newTestProtector(t)

	t.Run("raw string", func(t *testing.T) {
		env, err := p.Encrypt("just a string")
		if err != nil {
			t.Fatal(err)
		}

		plaintext, err := p.Decrypt(env)
		if err != nil {
			t.Fatal(err)
		}

		if _, ok := plaintext.Structured(); ok {
			t.Error("plain string reported as structured")
		}
		if plaintext.String() != "just a string" {
			t.Errorf("String() = %q", plaintext.String())
		}
	})

	t.Run("structured", func(t *testing.T) {
		env, err := p.Encrypt(map[string]any{"k": "v"})
		if err != nil {
			t.Fatal(err)
		}

		plaintext, err := p.Decrypt(env)
		if err != nil {
			t.Fatal(err)
		}

		structured, ok := plaintext.Structured()
		if !ok {
			t.Fatal("structured payload reported as raw")
		}
		if !reflect.DeepEqual(structured, map[string]any{"k": "v"}) {
			t.Errorf("Structured() = %#v", structured)
		}
	})

	t.Run("string that is valid JSON", func(t *testing.T) {
		// Inherent format ambiguity: the caller sees the structured form.
		env, err := p.Encrypt(`{"a":1}`)
		if err != nil {
			t.Fatal(err)
		}

		plaintext, err := p.Decrypt(env)
		if err != nil {
			t.Fatal(err)
		}

		if _, ok := plaintext.Structured(); !ok {
			t.Error("JSON-shaped string not reported as structured")
		}
		if plaintext.String() != `{"a":1}` {
			t.Errorf("String() = %q", plaintext.String())
		}
	})
}

func TestEnvelope_JSONRoundTrip(t *testing.T) {
	p := newTestProtector(t)

	env, err := p.EncryptWithPassword("persisted value", "pw")
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}

	var restored Envelope
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatal(err)
	}

	plaintext, err := p.DecryptWithPassword(&restored, "pw")
	if err != nil {
		t.Fatalf("decrypt after JSON round trip: %v", err)
	}
	if plaintext.String() != "persisted value" {
		t.Error("round trip mismatch")
	}
}

func TestSign_Verify(t *testing.T) {
	p := newTestProtector(t)

	tests := []struct {
		name  string
		value any
	}{
		{"string", "session-token-123"},
		{"structured", map[string]any{"sub": "acct-1", "exp": 1700000000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := p.Sign(tt.value)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}

			if !p.Verify(tt.value, tag) {
				t.Error("valid tag did not verify")
			}
		})
	}
}

func TestVerify_Mismatch(t *testing.T) {
	p := newTestProtector(t)

	tag, err := p.Sign("payload")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value any
		tag   string
	}{
		{"altered payload", "Payload", tag},
		{"garbage tag", "payload", "not base64 !!!"},
		{"empty tag", "payload", ""},
		{"truncated tag", "payload", tag[:10]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p.Verify(tt.value, tt.tag) {
				t.Error("invalid tag verified")
			}
		})
	}
}

func TestSignWithKey_KeySeparation(t *testing.T) {
	p := newTestProtector(t)

	keyA := bytes.Repeat([]byte{0x01}, 32)
	keyB := bytes.Repeat([]byte{0x02}, 32)

	tag, err := p.SignWithKey("payload", keyA)
	if err != nil {
		t.Fatal(err)
	}

	if !p.VerifyWithKey("payload", tag, keyA) {
		t.Error("valid tag did not verify under its key")
	}
	if p.VerifyWithKey("payload", tag, keyB) {
		t.Error("tag verified under the wrong key")
	}
}

func TestEncryptionError_NoKeyMaterial(t *testing.T) {
	p := newTestProtector(t)

	_, err := p.EncryptWithKey("value", []byte("short key"))
	if err == nil {
		t.Fatal("expected error for malformed key")
	}

	var encErr *EncryptionError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncryptionError, got %T", err)
	}

	if strings.Contains(err.Error(), "short key") {
		t.Errorf("error message leaks key bytes: %q", err)
	}
}
