package qseal

import (
	"fmt"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/qseal/envelope-go/internal/crypto"
)

// Argon2id defaults, matching common keyfile practice.
const (
	defaultArgon2Time    = 1
	defaultArgon2Memory  = 64 * 1024 // KiB
	defaultArgon2Threads = 4
)

// argon2idKDF is the KDF identifier written into protected records.
const argon2idKDF = "argon2id"

// ProtectedKeyRecord is an exported key record whose private key is
// sealed with ChaCha20-Poly1305 under a passphrase-derived Argon2id key.
// The record is a serialization format only; where it is stored is the
// caller's concern.
type ProtectedKeyRecord struct {
	// PublicKey is the base64url-encoded public key, stored in the clear.
	PublicKey string `json:"publicKey"`
	// SealedKey is the base64url-encoded encrypted private key.
	SealedKey string `json:"sealedKey"`
	// Algorithm is the suite identifier. Always present; protected
	// records postdate the legacy format.
	Algorithm string `json:"algorithm"`
	// KDF identifies the passphrase KDF. Currently always "argon2id".
	KDF string `json:"kdf"`
	// Salt is the base64url-encoded Argon2id salt.
	Salt string `json:"salt"`
	// Time, Memory and Threads are the Argon2id difficulty parameters.
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
	// Nonce is the base64url-encoded ChaCha20-Poly1305 nonce.
	Nonce string `json:"nonce"`
	// Timestamp is the Unix time the record was exported.
	Timestamp int64 `json:"timestamp"`
	// Version is the record format version.
	Version string `json:"version"`
}

// ExportProtected produces a key record whose private key is encrypted
// under the passphrase. The algorithm identifier is bound to the sealed
// key as associated data, so a record cannot be re-tagged to another
// suite without failing to open.
func ExportProtected(keyPair *KeyPair, passphrase []byte, opts ...ProtectOption) (*ProtectedKeyRecord, error) {
	if len(passphrase) == 0 {
		return nil, ErrPassphraseRequired
	}
	if !keyPair.Suite.Valid() {
		return nil, &UnsupportedSuiteError{Suite: string(keyPair.Suite)}
	}

	cfg := newProtectConfig(opts)

	salt, err := crypto.RandomBytes(crypto.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey(passphrase, salt, cfg.time, cfg.memory, cfg.threads, chacha20poly1305.KeySize)
	defer crypto.Zeroize(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("seal private key: %w", err)
	}

	nonce, err := crypto.RandomBytes(aead.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, keyPair.PrivateKey, []byte(keyPair.Suite))

	return &ProtectedKeyRecord{
		PublicKey: crypto.ToBase64URL(keyPair.PublicKey),
		SealedKey: crypto.ToBase64URL(sealed),
		Algorithm: string(keyPair.Suite),
		KDF:       argon2idKDF,
		Salt:      crypto.ToBase64URL(salt),
		Time:      cfg.time,
		Memory:    cfg.memory,
		Threads:   cfg.threads,
		Nonce:     crypto.ToBase64URL(nonce),
		Timestamp: time.Now().Unix(),
		Version:   KeyRecordVersion,
	}, nil
}

// ImportProtected recovers a key pair from a protected record. A wrong
// passphrase and a tampered record are indistinguishable: both fail with
// ErrAuthenticationFailed.
func ImportProtected(record *ProtectedKeyRecord, passphrase []byte) (*KeyPair, error) {
	if len(passphrase) == 0 {
		return nil, ErrPassphraseRequired
	}
	if err := record.validate(); err != nil {
		return nil, err
	}

	suite := Suite(record.Algorithm)
	if !suite.Valid() {
		return nil, &UnsupportedSuiteError{Suite: record.Algorithm}
	}

	pub, err := crypto.FromBase64URL(record.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid publicKey encoding", ErrMalformedKeyfile)
	}

	sealed, err := crypto.FromBase64URL(record.SealedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sealedKey encoding", ErrMalformedKeyfile)
	}

	salt, err := crypto.FromBase64URL(record.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedKeyfile)
	}

	nonce, err := crypto.FromBase64URL(record.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid nonce encoding", ErrMalformedKeyfile)
	}

	key := argon2.IDKey(passphrase, salt, record.Time, record.Memory, record.Threads, chacha20poly1305.KeySize)
	defer crypto.Zeroize(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("open private key: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: invalid nonce size", ErrMalformedKeyfile)
	}

	priv, err := aead.Open(nil, nonce, sealed, []byte(record.Algorithm))
	if err != nil {
		return nil, fmt.Errorf("%w: wrong passphrase or corrupted record", ErrAuthenticationFailed)
	}

	return &KeyPair{
		PublicKey:  pub,
		PrivateKey: priv,
		Suite:      suite,
	}, nil
}

func (r *ProtectedKeyRecord) validate() error {
	switch {
	case r == nil:
		return fmt.Errorf("%w: record is nil", ErrMalformedKeyfile)
	case r.PublicKey == "":
		return fmt.Errorf("%w: publicKey is required", ErrMalformedKeyfile)
	case r.SealedKey == "":
		return fmt.Errorf("%w: sealedKey is required", ErrMalformedKeyfile)
	case r.Algorithm == "":
		return fmt.Errorf("%w: algorithm is required", ErrMalformedKeyfile)
	case r.KDF != argon2idKDF:
		return fmt.Errorf("%w: unsupported kdf %q", ErrMalformedKeyfile, r.KDF)
	case r.Salt == "":
		return fmt.Errorf("%w: salt is required", ErrMalformedKeyfile)
	case r.Nonce == "":
		return fmt.Errorf("%w: nonce is required", ErrMalformedKeyfile)
	case r.Time == 0 || r.Memory == 0 || r.Threads == 0:
		return fmt.Errorf("%w: invalid argon2id parameters", ErrMalformedKeyfile)
	}
	return nil
}
