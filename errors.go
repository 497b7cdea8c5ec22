package qseal

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrUnsupportedSuite is returned when a suite identifier is not one
	// of the recognized tiers.
	ErrUnsupportedSuite = errors.New("unsupported algorithm suite")

	// ErrMalformedKeyRecord is returned when an exported key record is
	// missing required fields.
	ErrMalformedKeyRecord = errors.New("malformed key record")

	// ErrInvalidPublicKey is returned when a public key fails the
	// well-formedness check before encryption.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrEncapsulation is returned when the KEM rejects the recipient
	// public key during encryption.
	ErrEncapsulation = errors.New("key encapsulation failed")

	// ErrDecapsulation is returned when the KEM cannot recover the shared
	// secret, typically because the private key does not match the suite
	// or the KEM ciphertext is malformed.
	ErrDecapsulation = errors.New("key decapsulation failed")

	// ErrAuthenticationFailed is returned when the AEAD tag check fails
	// during decryption: tampered data, a wrong key, and corrupted
	// ciphertext are deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedEnvelope is returned when envelope text is not
	// well-formed or required fields are absent.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrMissingMessage is returned when Encrypt is called with a nil
	// message. An empty message is valid; an absent one is not.
	ErrMissingMessage = errors.New("message is required")

	// ErrMalformedKeyfile is returned when a protected key record is
	// structurally invalid.
	ErrMalformedKeyfile = errors.New("malformed protected key record")

	// ErrPassphraseRequired is returned when a protected export or import
	// is attempted with an empty passphrase.
	ErrPassphraseRequired = errors.New("passphrase is required")
)

// UnsupportedSuiteError reports an unrecognized suite identifier, keeping
// the offending identifier available to callers.
type UnsupportedSuiteError struct {
	Suite string
}

func (e *UnsupportedSuiteError) Error() string {
	if e.Suite == "" {
		return "unsupported algorithm suite"
	}
	return fmt.Sprintf("unsupported algorithm suite %q", e.Suite)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnsupportedSuiteError) Is(target error) bool {
	return target == ErrUnsupportedSuite
}
