// Package dataprotect is the data protection layer for the exchange's
// record-management services. It encrypts, decrypts, hashes, signs, and
// verifies sensitive values (asset ownership details, wallet secrets,
// policy beneficiaries) before they reach persistence and after they are
// read back.
//
// Callers never touch cryptographic primitives directly: they hand the
// package a value, a password, or a field path, and get back either a
// protected envelope or the recovered plaintext. Every decryption path
// verifies integrity before releasing data and fails closed.
//
// Basic usage:
//
//	p, err := dataprotect.New(os.Getenv("DATA_PROTECT_MASTER_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encrypt a single value under the master key
//	env, err := p.Encrypt("4111-1111-1111-1111")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Protect a field inside a record in place
//	record := map[string]any{"owner": map[string]any{"ssn": "078-05-1120"}}
//	if err := p.ProtectField(record, "owner.ssn"); err != nil {
//	    log.Fatal(err)
//	}
//
// The master key is 32 bytes, hex-encoded, sourced from configuration at
// startup. A missing key is a constructor error: silently generating an
// ephemeral key would make previously stored envelopes unrecoverable after
// a restart. Deployments that accept that trade-off (development, tests)
// must opt in explicitly with [WithEphemeralKey].
//
// All operations are synchronous and stateless; a Protector is immutable
// after construction and safe for concurrent use.
package dataprotect
