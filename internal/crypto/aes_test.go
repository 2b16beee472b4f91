package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestSealAESGCM_OpenAESGCM_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
		nonceSize int
	}{
		{"empty", []byte{}, EnvelopeNonceSize},
		{"simple", []byte("hello world"), EnvelopeNonceSize},
		{"json", []byte(`{"owner": "acct-9", "balance": 125000}`), EnvelopeNonceSize},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}, EnvelopeNonceSize},
		{"large", make([]byte, 10000), EnvelopeNonceSize},
		{"sealed nonce size", []byte("hello world"), SealedNonceSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, KeySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatal(err)
			}

			nonce := make([]byte, tt.nonceSize)
			if _, err := rand.Read(nonce); err != nil {
				t.Fatal(err)
			}

			ciphertext, tag, err := SealAESGCM(key, nonce, nil, tt.plaintext)
			if err != nil {
				t.Fatalf("SealAESGCM() error = %v", err)
			}

			if len(ciphertext) != len(tt.plaintext) {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(tt.plaintext))
			}

			if len(tag) != TagSize {
				t.Errorf("tag length = %d, want %d", len(tag), TagSize)
			}

			decrypted, err := OpenAESGCM(key, nonce, nil, ciphertext, tag)
			if err != nil {
				t.Fatalf("OpenAESGCM() error = %v", err)
			}

			if !bytes.Equal(decrypted, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", decrypted, tt.plaintext)
			}
		})
	}
}

func TestSealAESGCM_InvalidKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"too long", 64},
	}

	nonce := make([]byte, EnvelopeNonceSize)
	plaintext := []byte("test")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, tt.keySize)
			_, _, err := SealAESGCM(key, nonce, nil, plaintext)
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("expected ErrInvalidKeySize, got %v", err)
			}
		})
	}
}

func TestSealAESGCM_InvalidNonceSize(t *testing.T) {
	tests := []struct {
		name      string
		nonceSize int
	}{
		{"empty", 0},
		{"too short", 8},
		{"too long", 24},
	}

	key := make([]byte, KeySize)
	plaintext := []byte("test")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce := make([]byte, tt.nonceSize)
			_, _, err := SealAESGCM(key, nonce, nil, plaintext)
			if !errors.Is(err, ErrInvalidNonceSize) {
				t.Errorf("expected ErrInvalidNonceSize, got %v", err)
			}
		})
	}
}

func TestOpenAESGCM_Tampered(t *testing.T) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}

	nonce := make([]byte, EnvelopeNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	ciphertext, tag, err := SealAESGCM(key, nonce, nil, []byte("sensitive account number"))
	if err != nil {
		t.Fatal(err)
	}

	flip := func(b []byte, i int) []byte {
		out := bytes.Clone(b)
		out[i] ^= 0x01
		return out
	}

	tests := []struct {
		name           string
		nonce, ct, tag []byte
	}{
		{"ciphertext first byte", nonce, flip(ciphertext, 0), tag},
		{"ciphertext last byte", nonce, flip(ciphertext, len(ciphertext)-1), tag},
		{"nonce", flip(nonce, 3), ciphertext, tag},
		{"tag first byte", nonce, ciphertext, flip(tag, 0)},
		{"tag last byte", nonce, ciphertext, flip(tag, TagSize-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintext, err := OpenAESGCM(key, tt.nonce, nil, tt.ct, tt.tag)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
			if plaintext != nil {
				t.Errorf("tampered decryption returned plaintext %q", plaintext)
			}
		})
	}
}

func TestOpenAESGCM_WrongKey(t *testing.T) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}

	nonce := make([]byte, EnvelopeNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	ciphertext, tag, err := SealAESGCM(key, nonce, nil, []byte("test"))
	if err != nil {
		t.Fatal(err)
	}

	wrongKey := make([]byte, KeySize)
	if _, err := rand.Read(wrongKey); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenAESGCM(wrongKey, nonce, nil, ciphertext, tag); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestOpenAESGCM_InvalidTagSize(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, EnvelopeNonceSize)

	_, err := OpenAESGCM(key, nonce, nil, []byte("ct"), make([]byte, 8))
	if !errors.Is(err, ErrInvalidTagSize) {
		t.Errorf("expected ErrInvalidTagSize, got %v", err)
	}
}

func TestSealAESGCM_AADMismatch(t *testing.T) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}

	nonce := make([]byte, SealedNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	ciphertext, tag, err := SealAESGCM(key, nonce, []byte("context-a"), []byte("test"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := OpenAESGCM(key, nonce, []byte("context-b"), ciphertext, tag); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}
