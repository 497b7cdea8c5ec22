package qseal

import (
	"github.com/qseal/envelope-go/internal/crypto"
)

// Suite identifies the KEM strength tier used for a key pair or an
// envelope. Exactly one suite is active per key pair and per envelope;
// suites are never mixed within one operation.
type Suite string

const (
	// SuiteHigh is the high-strength tier, ML-KEM-1024 (NIST category 5).
	SuiteHigh Suite = "ML-KEM-1024"
	// SuiteBalanced is the balanced tier, ML-KEM-768 (NIST category 3).
	SuiteBalanced Suite = "ML-KEM-768"
)

// DefaultSuite is the suite used when a legacy key record carries no
// algorithm tag.
const DefaultSuite = SuiteHigh

// Suites returns the recognized suites.
func Suites() []Suite {
	return []Suite{SuiteHigh, SuiteBalanced}
}

// algorithm maps a suite onto the KEM algorithm enumeration. The switch
// is exhaustive over the recognized suites; anything else is rejected so
// an unknown tier can never fall through to a default.
func (s Suite) algorithm() (crypto.Algorithm, error) {
	switch s {
	case SuiteHigh:
		return crypto.MLKEM1024, nil
	case SuiteBalanced:
		return crypto.MLKEM768, nil
	}
	return 0, &UnsupportedSuiteError{Suite: string(s)}
}

// Valid reports whether s is one of the recognized suites.
func (s Suite) Valid() bool {
	_, err := s.algorithm()
	return err == nil
}

// PublicKeySize returns the raw public key size for the suite in bytes,
// or 0 for an unrecognized suite.
func (s Suite) PublicKeySize() int {
	alg, err := s.algorithm()
	if err != nil {
		return 0
	}
	return alg.PublicKeySize()
}

// PrivateKeySize returns the raw private key size for the suite in bytes,
// or 0 for an unrecognized suite.
func (s Suite) PrivateKeySize() int {
	alg, err := s.algorithm()
	if err != nil {
		return 0
	}
	return alg.PrivateKeySize()
}

// CiphertextSize returns the KEM ciphertext size for the suite in bytes,
// or 0 for an unrecognized suite.
func (s Suite) CiphertextSize() int {
	alg, err := s.algorithm()
	if err != nil {
		return 0
	}
	return alg.CiphertextSize()
}

// String returns the wire identifier of the suite.
func (s Suite) String() string {
	return string(s)
}
