package crypto

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "qseal:envelope:v1"

	// SharedSecretSize is the size of the shared secret produced by
	// both ML-KEM tiers in bytes.
	SharedSecretSize = 32

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// SaltSize is the size of the HKDF salt generated per encryption
	// in bytes. The width is the same for every KEM tier.
	SaltSize = 32
)
