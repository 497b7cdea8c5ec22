package qseal

// decryptConfig holds configuration for a Decrypt call.
type decryptConfig struct {
	suite Suite
}

// DecryptOption configures decryption.
type DecryptOption func(*decryptConfig)

// WithSuite forces decryption under the given suite, overriding the suite
// embedded in the envelope. This supports forced-algorithm testing and
// migration scenarios; in normal operation the embedded suite is
// authoritative.
func WithSuite(suite Suite) DecryptOption {
	return func(c *decryptConfig) {
		c.suite = suite
	}
}

func newDecryptConfig(opts []DecryptOption) *decryptConfig {
	cfg := &decryptConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// protectConfig holds configuration for protected key export.
type protectConfig struct {
	time    uint32
	memory  uint32
	threads uint8
}

// ProtectOption configures passphrase-protected key export.
type ProtectOption func(*protectConfig)

// WithArgon2Time sets the Argon2id time parameter.
// Default: 1.
func WithArgon2Time(time uint32) ProtectOption {
	return func(c *protectConfig) {
		c.time = time
	}
}

// WithArgon2Memory sets the Argon2id memory parameter in KiB.
// Default: 65536 (64 MiB).
func WithArgon2Memory(memoryKiB uint32) ProtectOption {
	return func(c *protectConfig) {
		c.memory = memoryKiB
	}
}

// WithArgon2Threads sets the Argon2id parallelism.
// Default: 4.
func WithArgon2Threads(threads uint8) ProtectOption {
	return func(c *protectConfig) {
		c.threads = threads
	}
}

func newProtectConfig(opts []ProtectOption) *protectConfig {
	cfg := &protectConfig{
		time:    defaultArgon2Time,
		memory:  defaultArgon2Memory,
		threads: defaultArgon2Threads,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
