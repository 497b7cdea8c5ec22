package crypto

import "errors"

var (
	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPrivateKeySize is returned when the private key size is invalid.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrAuthenticationFailed is returned when AEAD opening fails the
	// integrity check. It is deliberately opaque: tag mismatch, wrong key
	// and corrupted ciphertext are indistinguishable.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrUnknownAlgorithm is returned when an Algorithm value is not one
	// of the recognized ML-KEM tiers.
	ErrUnknownAlgorithm = errors.New("unknown KEM algorithm")
)
