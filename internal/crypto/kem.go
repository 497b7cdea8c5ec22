package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// Algorithm identifies a KEM strength tier. The set is closed: every
// switch over an Algorithm is exhaustive so that an unrecognized value
// can never fall through to a default tier.
type Algorithm int

const (
	// MLKEM768 is the balanced tier (NIST category 3).
	MLKEM768 Algorithm = iota
	// MLKEM1024 is the high tier (NIST category 5).
	MLKEM1024
)

// Scheme returns the circl KEM scheme for the algorithm.
func (a Algorithm) Scheme() (kem.Scheme, error) {
	switch a {
	case MLKEM768:
		return mlkem768.Scheme(), nil
	case MLKEM1024:
		return mlkem1024.Scheme(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, a)
}

// PublicKeySize returns the raw public key size in bytes, or 0 for an
// unrecognized algorithm.
func (a Algorithm) PublicKeySize() int {
	scheme, err := a.Scheme()
	if err != nil {
		return 0
	}
	return scheme.PublicKeySize()
}

// PrivateKeySize returns the raw private key size in bytes, or 0 for an
// unrecognized algorithm.
func (a Algorithm) PrivateKeySize() int {
	scheme, err := a.Scheme()
	if err != nil {
		return 0
	}
	return scheme.PrivateKeySize()
}

// CiphertextSize returns the KEM ciphertext size in bytes, or 0 for an
// unrecognized algorithm.
func (a Algorithm) CiphertextSize() int {
	scheme, err := a.Scheme()
	if err != nil {
		return 0
	}
	return scheme.CiphertextSize()
}

// GenerateKeyPair creates a fresh key pair for the algorithm and returns
// the raw encoded key bytes. Every call draws new randomness; key
// material is never cached or reused.
func GenerateKeyPair(a Algorithm) (publicKey, privateKey []byte, err error) {
	scheme, err := a.Scheme()
	if err != nil {
		return nil, nil, err
	}

	pub, priv, err := scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}

	// MarshalBinary never fails for keys produced by GenerateKeyPair.
	publicKey, _ = pub.MarshalBinary()
	privateKey, _ = priv.MarshalBinary()
	return publicKey, privateKey, nil
}

// Encapsulate runs KEM encapsulation against a raw public key and returns
// the KEM ciphertext together with the shared secret.
func Encapsulate(a Algorithm, publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	scheme, err := a.Scheme()
	if err != nil {
		return nil, nil, err
	}

	if len(publicKey) != scheme.PublicKeySize() {
		return nil, nil, fmt.Errorf("%w: got %d, want %d",
			ErrInvalidPublicKeySize, len(publicKey), scheme.PublicKeySize())
	}

	pub, err := scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("unmarshal public key: %w", err)
	}

	return scheme.Encapsulate(pub)
}

// Decapsulate recovers the shared secret from a KEM ciphertext using a
// raw private key.
func Decapsulate(a Algorithm, privateKey, ciphertext []byte) ([]byte, error) {
	scheme, err := a.Scheme()
	if err != nil {
		return nil, err
	}

	if len(privateKey) != scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrInvalidPrivateKeySize, len(privateKey), scheme.PrivateKeySize())
	}

	if len(ciphertext) != scheme.CiphertextSize() {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrInvalidCiphertextSize, len(ciphertext), scheme.CiphertextSize())
	}

	priv, err := scheme.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("unmarshal private key: %w", err)
	}

	return scheme.Decapsulate(priv, ciphertext)
}
