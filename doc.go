// Package qseal implements a hybrid post-quantum encryption envelope
// protocol. A sender encrypts a message for a recipient's public key with
// no prior shared secret; the result is a self-describing, versioned,
// algorithm-agile envelope that stays secure against both classical and
// quantum adversaries for the key-establishment step.
//
// Encryption encapsulates a fresh shared secret against the recipient's
// ML-KEM public key, stretches it into an AES-256 key with HKDF-SHA-512
// under a per-envelope salt, and seals the message with AES-256-GCM under
// a per-envelope nonce. Decryption reverses the pipeline; the AEAD tag is
// the sole integrity authority and any tampering fails closed.
//
// Basic usage:
//
//	keyPair, err := qseal.GenerateKeyPair(qseal.SuiteHigh)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer keyPair.Zeroize()
//
//	envelope, err := qseal.Encrypt([]byte("Hello, quantum-resistant world!"), keyPair.PublicKey, keyPair.Suite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := qseal.Decrypt(envelope, keyPair.PrivateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Suites
//
// Two KEM tiers are supported: [SuiteHigh] (ML-KEM-1024) and
// [SuiteBalanced] (ML-KEM-768). The suite travels inside the envelope, so
// decryption needs no out-of-band algorithm agreement; [WithSuite]
// overrides the embedded suite when a caller must force one.
//
// # Key Management
//
// [GenerateKeyPair] draws fresh randomness per call. Key pairs round-trip
// through [KeyPair.Export] and [ImportKeyPair]; legacy records without an
// algorithm tag import as [DefaultSuite]. [ExportProtected] additionally
// seals the private key under a passphrase with Argon2id and
// ChaCha20-Poly1305.
//
// Private keys, shared secrets, and derived keys are never logged. The
// package zeroizes transient secrets on every path; callers erase key
// pairs they own with [KeyPair.Zeroize].
//
// # Concurrency
//
// The package holds no state across calls. Encrypt, Decrypt, and all key
// lifecycle functions are safe for concurrent use.
package qseal
