package dataprotect

import (
	"encoding/json"
	"fmt"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

// Envelope is the portable form of an encrypted value: ciphertext plus the
// metadata needed to decrypt it. All byte fields are URL-safe base64
// without padding. The JSON shape is stable and suitable for embedding in
// a larger persisted record.
//
// Nonce and Tag are mandatory and unique per encryption call; Salt is
// present only on password-derived envelopes and is not secret.
type Envelope struct {
	// Ciphertext is the AES-256-GCM encrypted value.
	Ciphertext string `json:"ciphertext"`
	// Nonce is the 16-byte random nonce generated for this envelope.
	Nonce string `json:"nonce"`
	// Tag is the 16-byte GCM authentication tag, verified before any
	// plaintext is released.
	Tag string `json:"tag"`
	// Salt is the 64-byte key-derivation salt for password-derived
	// envelopes.
	Salt string `json:"salt,omitempty"`
}

// envelopeFromValue coerces a stored representation back into an Envelope.
// A protected field read back from persistence arrives as a generic map;
// one protected in-process is still a *Envelope.
func envelopeFromValue(v any) (*Envelope, error) {
	switch x := v.(type) {
	case *Envelope:
		return x, nil
	case Envelope:
		return &x, nil
	case map[string]any:
		env := &Envelope{}
		var ok bool
		if env.Ciphertext, ok = x["ciphertext"].(string); !ok {
			return nil, fmt.Errorf("missing ciphertext")
		}
		if env.Nonce, ok = x["nonce"].(string); !ok {
			return nil, fmt.Errorf("missing nonce")
		}
		if env.Tag, ok = x["tag"].(string); !ok {
			return nil, fmt.Errorf("missing tag")
		}
		if salt, ok := x["salt"].(string); ok {
			env.Salt = salt
		}
		return env, nil
	default:
		return nil, fmt.Errorf("unsupported envelope representation %T", v)
	}
}

// Plaintext is the typed result of a decryption. The recovered bytes are
// decoded as JSON when possible; otherwise they are exposed as a raw
// string. Modeling the fallback as a type lets callers distinguish the two
// shapes instead of relying on incidental control flow.
//
// The ambiguity is inherent to the format: a raw string that happens to be
// valid JSON decrypts to its structured form.
type Plaintext struct {
	raw        []byte
	structured any
	isJSON     bool
}

func newPlaintext(raw []byte) *Plaintext {
	p := &Plaintext{raw: raw}

	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		p.structured = v
		p.isJSON = true
	}

	return p
}

// Structured returns the JSON-decoded value and true when the recovered
// bytes parsed as JSON, or (nil, false) for raw plaintexts.
func (p *Plaintext) Structured() (any, bool) {
	if !p.isJSON {
		return nil, false
	}
	return p.structured, true
}

// Value returns the structured form when present, the raw string otherwise.
func (p *Plaintext) Value() any {
	if p.isJSON {
		return p.structured
	}
	return string(p.raw)
}

// String returns the recovered bytes as a string.
func (p *Plaintext) String() string {
	return string(p.raw)
}

// Bytes returns the recovered bytes.
func (p *Plaintext) Bytes() []byte {
	return p.raw
}

// serialize converts a value to its canonical byte form before encryption
// or signing: strings and byte slices pass through untouched, everything
// else marshals to JSON (map keys sorted by encoding/json).
func serialize(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("serialize value: %w", err)
		}
		return data, nil
	}
}

// decodeEnvelope decodes the base64 fields of an envelope, tolerating
// alternate base64 variants introduced by other tooling.
func decodeEnvelope(env *Envelope) (nonce, ciphertext, tag []byte, err error) {
	if nonce, err = crypto.DecodeBase64(env.Nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("decode nonce: %w", err)
	}
	if ciphertext, err = crypto.DecodeBase64(env.Ciphertext); err != nil {
		return nil, nil, nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	if tag, err = crypto.DecodeBase64(env.Tag); err != nil {
		return nil, nil, nil, fmt.Errorf("decode tag: %w", err)
	}
	return nonce, ciphertext, tag, nil
}
