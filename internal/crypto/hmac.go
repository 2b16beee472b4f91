package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// MAC computes an HMAC-SHA-256 tag over message.
func MAC(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// VerifyMAC recomputes the tag for message and compares it to tag in
// constant time. A well-formed mismatch returns false, never an error.
func VerifyMAC(key, message, tag []byte) bool {
	return hmac.Equal(MAC(key, message), tag)
}
