// Package crypto provides the cryptographic primitives behind the qseal
// envelope protocol: post-quantum key encapsulation, authenticated
// encryption, and key derivation.
//
// # Algorithm Suite
//
// The package uses the following algorithms:
//
//   - ML-KEM-768 and ML-KEM-1024 (NIST FIPS 203): Post-quantum key
//     encapsulation mechanisms for establishing shared secrets, at the
//     192-bit and 256-bit security levels respectively.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for encrypting message content. Provides confidentiality and
//     integrity.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation function for deriving AES
//     keys from KEM shared secrets with domain separation.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing
// attackers to recover the authentication key and forge messages. The
// envelope protocol generates a fresh nonce (and a fresh HKDF salt) per
// encryption.
//
// [OpenAESGCM] fails closed: any tag mismatch returns
// [ErrAuthenticationFailed] and never a partially decrypted plaintext.
//
// Shared secrets and derived keys are transient. Callers must erase them
// with [Zeroize] once they are no longer needed, on error paths included.
//
// # KEM Algorithms
//
// The [Algorithm] enumeration is closed over the two ML-KEM tiers. Every
// dispatch on an Algorithm is an exhaustive switch; an unrecognized value
// surfaces [ErrUnknownAlgorithm] rather than falling back to a default
// tier.
package crypto
