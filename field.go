package dataprotect

import (
	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/fieldpath"
)

// ProtectField encrypts a single named field inside a nested record, in
// place. The terminal field is replaced by a sibling keyed with the
// protected-field suffix (default "_encrypted") holding the envelope, and
// the plaintext field is removed.
//
// Missing intermediate path segments and an absent terminal field are
// no-ops: callers apply protection optimistically across heterogeneous
// records. A malformed path is a ValidationError.
func (p *Protector) ProtectField(obj map[string]any, path string) error {
	fp, err := fieldpath.Parse(path)
	if err != nil {
		return &ValidationError{Err: ErrInvalidFieldPath}
	}

	parent, ok := fp.ResolveParent(obj)
	if !ok {
		return nil
	}

	name := fp.Terminal()
	value, exists := parent[name]
	if !exists {
		return nil
	}

	env, err := p.Encrypt(value)
	if err != nil {
		return err
	}

	parent[name+p.fieldSuffix] = env
	delete(parent, name)
	return nil
}

// RevealField is the inverse of ProtectField: when the marked encrypted
// sibling exists it is decrypted and restored under the original field
// name, and the marker field is removed. The envelope may be a live
// *Envelope or the generic map shape it takes after a persistence round
// trip.
//
// A record without the marker field is returned unchanged.
func (p *Protector) RevealField(obj map[string]any, path string) error {
	fp, err := fieldpath.Parse(path)
	if err != nil {
		return &ValidationError{Err: ErrInvalidFieldPath}
	}

	parent, ok := fp.ResolveParent(obj)
	if !ok {
		return nil
	}

	name := fp.Terminal()
	marker := name + p.fieldSuffix

	raw, exists := parent[marker]
	if !exists {
		return nil
	}

	env, err := envelopeFromValue(raw)
	if err != nil {
		return wrapDecryptionError(err)
	}

	plaintext, err := p.Decrypt(env)
	if err != nil {
		return err
	}

	parent[name] = plaintext.Value()
	delete(parent, marker)
	return nil
}
