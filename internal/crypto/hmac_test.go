package crypto

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestMAC_VerifyMAC(t *testing.T) {
	key := []byte("signing key")

	tests := []struct {
		name    string
		message []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("transfer:acct-1:acct-2:5000")},
		{"binary", []byte{0x00, 0xff, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := MAC(key, tt.message)

			if len(tag) != sha256.Size {
				t.Errorf("tag length = %d, want %d", len(tag), sha256.Size)
			}

			if !VerifyMAC(key, tt.message, tag) {
				t.Error("valid tag did not verify")
			}
		})
	}
}

func TestVerifyMAC_Mismatch(t *testing.T) {
	key := []byte("signing key")
	message := []byte("payload")
	tag := MAC(key, message)

	flipped := bytes.Clone(tag)
	flipped[0] ^= 0x01

	tests := []struct {
		name          string
		key, msg, tag []byte
	}{
		{"altered message", key, []byte("Payload"), tag},
		{"altered tag", key, message, flipped},
		{"wrong key", []byte("other key"), message, tag},
		{"truncated tag", key, message, tag[:16]},
		{"empty tag", key, message, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyMAC(tt.key, tt.msg, tt.tag) {
				t.Error("invalid tag verified")
			}
		})
	}
}

func TestMAC_KeySeparation(t *testing.T) {
	message := []byte("payload")

	a := MAC([]byte("key-a"), message)
	b := MAC([]byte("key-b"), message)

	if bytes.Equal(a, b) {
		t.Error("different keys produced the same tag")
	}
}
