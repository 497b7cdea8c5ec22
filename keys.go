package qseal

import (
	"fmt"
	"time"

	"github.com/qseal/envelope-go/internal/crypto"
)

// KeyRecordVersion is the current exported key record format version.
const KeyRecordVersion = "1.0"

// KeyPair holds the raw key material for one suite. The byte slices are
// exactly the suite's fixed sizes; a pair that violates this is rejected
// at the boundary that receives it, never silently coerced.
//
// Callers own the lifetime of a KeyPair. Call [KeyPair.Zeroize] once the
// private key is no longer needed.
type KeyPair struct {
	// PublicKey is the raw KEM public key bytes.
	PublicKey []byte
	// PrivateKey is the raw KEM private key bytes.
	PrivateKey []byte
	// Suite is the tier the keys were generated for.
	Suite Suite
}

// GenerateKeyPair creates a new key pair for the given suite. Every call
// draws fresh randomness; key material is never cached or pooled.
func GenerateKeyPair(suite Suite) (*KeyPair, error) {
	alg, err := suite.algorithm()
	if err != nil {
		return nil, err
	}

	pub, priv, err := crypto.GenerateKeyPair(alg)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	return &KeyPair{
		PublicKey:  pub,
		PrivateKey: priv,
		Suite:      suite,
	}, nil
}

// Zeroize erases the private key bytes in place. The pair must not be
// used for decryption afterwards.
func (k *KeyPair) Zeroize() {
	crypto.Zeroize(k.PrivateKey)
}

// ExportedKeyRecord is the storage-agnostic projection of a KeyPair with
// provenance metadata. It round-trips losslessly through Export and
// ImportKeyPair.
//
// Algorithm is optional for backward compatibility: records written
// before suites existed carry no tag and import as [DefaultSuite].
type ExportedKeyRecord struct {
	// PublicKey is the base64url-encoded public key.
	PublicKey string `json:"publicKey"`
	// PrivateKey is the base64url-encoded private key.
	PrivateKey string `json:"privateKey"`
	// Algorithm is the suite identifier. Empty in legacy records.
	Algorithm string `json:"algorithm,omitempty"`
	// Timestamp is the Unix time the record was exported.
	Timestamp int64 `json:"timestamp"`
	// Version is the record format version.
	Version string `json:"version"`
}

// Export produces an exportable record for the key pair, stamped with the
// current time and format version. It never fails for a well-formed pair.
//
// The record contains private key material. Handle it accordingly.
func (k *KeyPair) Export() *ExportedKeyRecord {
	return &ExportedKeyRecord{
		PublicKey:  crypto.ToBase64URL(k.PublicKey),
		PrivateKey: crypto.ToBase64URL(k.PrivateKey),
		Algorithm:  string(k.Suite),
		Timestamp:  time.Now().Unix(),
		Version:    KeyRecordVersion,
	}
}

// ImportKeyPair reconstructs a key pair from an exported record.
//
// A record missing either key fails with [ErrMalformedKeyRecord]. A
// record with no algorithm tag imports as [DefaultSuite] — a legacy
// compatibility rule, stated rather than inferred from key length. An
// unrecognized algorithm tag fails with [ErrUnsupportedSuite]. Key
// lengths are not validated here; that is the job of
// [ValidatePublicKey] and the encrypt/decrypt paths.
func ImportKeyPair(record *ExportedKeyRecord) (*KeyPair, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is nil", ErrMalformedKeyRecord)
	}
	if record.PublicKey == "" {
		return nil, fmt.Errorf("%w: publicKey is required", ErrMalformedKeyRecord)
	}
	if record.PrivateKey == "" {
		return nil, fmt.Errorf("%w: privateKey is required", ErrMalformedKeyRecord)
	}

	suite := DefaultSuite
	if record.Algorithm != "" {
		suite = Suite(record.Algorithm)
		if !suite.Valid() {
			return nil, &UnsupportedSuiteError{Suite: record.Algorithm}
		}
	}

	pub, err := crypto.FromBase64URL(record.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid publicKey encoding", ErrMalformedKeyRecord)
	}

	priv, err := crypto.FromBase64URL(record.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid privateKey encoding", ErrMalformedKeyRecord)
	}

	return &KeyPair{
		PublicKey:  pub,
		PrivateKey: priv,
		Suite:      suite,
	}, nil
}

// ValidatePublicKey reports whether a base64url-encoded public key is
// plausible for the suite. It is a total predicate: empty input, invalid
// encoding, a wrong decoded length, an all-zero key, and an unrecognized
// suite all return false, never an error.
//
// This is a best-effort filter against obviously corrupt input, not a
// cryptographic validity proof — the KEM itself remains the authority.
func ValidatePublicKey(publicKey string, suite Suite) bool {
	if publicKey == "" || !suite.Valid() {
		return false
	}

	decoded, err := crypto.FromBase64URL(publicKey)
	if err != nil {
		return false
	}

	return validPublicKeyBytes(decoded, suite)
}

// validPublicKeyBytes checks decoded key bytes for the right length and
// rejects the degenerate all-zero pattern.
func validPublicKeyBytes(key []byte, suite Suite) bool {
	if len(key) != suite.PublicKeySize() {
		return false
	}

	for _, b := range key {
		if b != 0 {
			return true
		}
	}
	return false
}
