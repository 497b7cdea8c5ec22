package qseal

import (
	"fmt"

	"github.com/qseal/envelope-go/internal/crypto"
)

// Decrypt parses an envelope, recovers the shared secret with the private
// key, and opens the ciphertext. It returns the original message bytes.
//
// The envelope's embedded suite is authoritative unless the caller
// overrides it with [WithSuite], in which case the override takes
// precedence. Stage failures are distinguishable through errors.Is:
// [ErrMalformedEnvelope] and [ErrUnsupportedSuite] for bad input,
// [ErrDecapsulation] for a rejected key or KEM ciphertext, and
// [ErrAuthenticationFailed] for a failed tag check. Authentication
// failure is opaque: a tampered envelope is never distinguishable from
// one that decrypted to garbage, and no partial plaintext ever escapes.
//
// The shared secret and derived key are erased before Decrypt returns,
// on failure paths included.
func Decrypt(envelopeText string, privateKey []byte, opts ...DecryptOption) ([]byte, error) {
	cfg := newDecryptConfig(opts)

	env, err := ParseEnvelope(envelopeText)
	if err != nil {
		return nil, err
	}

	// Explicit caller intent beats embedded metadata.
	suite := env.Suite()
	if cfg.suite != "" {
		suite = cfg.suite
	}

	alg, err := suite.algorithm()
	if err != nil {
		return nil, err
	}

	kemCiphertext, err := crypto.FromBase64URL(env.KEM)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid KEM ciphertext encoding", ErrMalformedEnvelope)
	}

	salt, err := crypto.FromBase64URL(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedEnvelope)
	}

	nonce, err := crypto.FromBase64URL(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid nonce encoding", ErrMalformedEnvelope)
	}

	ciphertext, err := crypto.FromBase64URL(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext encoding", ErrMalformedEnvelope)
	}

	sharedSecret, err := crypto.Decapsulate(alg, privateKey, kemCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecapsulation, err)
	}
	defer crypto.Zeroize(sharedSecret)

	key, err := crypto.DeriveKey(sharedSecret, salt, []byte(crypto.HKDFContext), crypto.AESKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Zeroize(key)

	plaintext, err := crypto.OpenAESGCM(key, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open: %w", ErrAuthenticationFailed)
	}

	return plaintext, nil
}
