package dataprotect

// defaultFieldSuffix marks the encrypted sibling of a protected field.
const defaultFieldSuffix = "_encrypted"

// protectorConfig holds configuration for the Protector.
type protectorConfig struct {
	allowEphemeralKey bool
	fieldSuffix       string
}

// Option configures the Protector.
type Option func(*protectorConfig)

// WithEphemeralKey permits constructing a Protector without a configured
// master key by generating a random one. Envelopes encrypted under an
// ephemeral key are unrecoverable after the process exits, which silently
// breaks decryption of persisted data; this exists for development and
// tests only and is off by default.
func WithEphemeralKey() Option {
	return func(c *protectorConfig) {
		c.allowEphemeralKey = true
	}
}

// WithFieldSuffix overrides the marker suffix appended to protected field
// names (default "_encrypted"). Protect and reveal must use the same
// suffix for a given record.
func WithFieldSuffix(suffix string) Option {
	return func(c *protectorConfig) {
		if suffix != "" {
			c.fieldSuffix = suffix
		}
	}
}
