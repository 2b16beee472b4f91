package crypto

import (
	"encoding/base64"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// DecodeBase64 decodes base64 in any common variant. Envelope fields are
// written as unpadded base64url, but values that round-tripped through
// other tooling may arrive padded or in the standard alphabet.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.URLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.RawStdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	return base64.StdEncoding.DecodeString(s)
}
