package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// randReader is the random source used for nonces, salts, and key
// generation. It defaults to nil (which uses crypto/rand) but can be
// overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(reader(), b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// RandomHex returns n cryptographically secure random bytes encoded as a
// lowercase hex string of length 2n.
func RandomHex(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
