package qseal

import (
	"fmt"
	"time"

	"github.com/qseal/envelope-go/internal/crypto"
)

// Encrypt seals a message for a recipient public key and returns the
// serialized envelope.
//
// The message may be empty but not nil: nil fails with
// [ErrMissingMessage]. The public key must be the suite's exact size and
// not all zero, else [ErrInvalidPublicKey].
//
// Each call generates a fresh HKDF salt and AES-GCM nonce, so two
// encryptions of the same message to the same recipient produce distinct,
// unlinkable envelopes. The KEM shared secret and the derived key are
// erased before Encrypt returns, on failure paths included.
func Encrypt(message, publicKey []byte, suite Suite) (string, error) {
	if message == nil {
		return "", ErrMissingMessage
	}

	alg, err := suite.algorithm()
	if err != nil {
		return "", err
	}

	if !validPublicKeyBytes(publicKey, suite) {
		return "", fmt.Errorf("%w: want %d bytes for %s",
			ErrInvalidPublicKey, suite.PublicKeySize(), suite)
	}

	kemCiphertext, sharedSecret, err := crypto.Encapsulate(alg, publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncapsulation, err)
	}
	defer crypto.Zeroize(sharedSecret)

	salt, err := crypto.RandomBytes(crypto.SaltSize)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := crypto.DeriveKey(sharedSecret, salt, []byte(crypto.HKDFContext), crypto.AESKeySize)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Zeroize(key)

	nonce, err := crypto.RandomBytes(crypto.AESNonceSize)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext, err := crypto.SealAESGCM(key, nonce, message, nil)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	env := &Envelope{
		V:          EnvelopeVersion,
		Alg:        string(suite),
		KEM:        crypto.ToBase64URL(kemCiphertext),
		Salt:       crypto.ToBase64URL(salt),
		Nonce:      crypto.ToBase64URL(nonce),
		Ciphertext: crypto.ToBase64URL(ciphertext),
		T:          time.Now().Unix(),
	}

	return env.Serialize()
}
