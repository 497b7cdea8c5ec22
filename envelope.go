package qseal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EnvelopeVersion is the current envelope format version. It is advanced
// whenever the envelope shape changes incompatibly.
const EnvelopeVersion = 1

// Envelope is the on-wire ciphertext container. All byte-bearing fields
// are base64url-encoded without padding; field order on the wire is
// fixed: v, alg, kem, s, n, c, t.
//
// An envelope is created once per Encrypt call and is immutable. Replaying
// the same envelope through Decrypt is permitted (decryption is
// idempotent) but carries no freshness guarantee.
type Envelope struct {
	// V is the envelope format version.
	V int `json:"v"`
	// Alg is the suite identifier the envelope was produced under.
	Alg string `json:"alg"`
	// KEM is the KEM ciphertext.
	KEM string `json:"kem"`
	// Salt is the HKDF salt generated for this envelope.
	Salt string `json:"s"`
	// Nonce is the AES-GCM nonce generated for this envelope.
	Nonce string `json:"n"`
	// Ciphertext is the AEAD ciphertext with the tag appended.
	Ciphertext string `json:"c"`
	// T is the Unix time the envelope was created.
	T int64 `json:"t"`
}

// Suite returns the suite declared by the envelope.
func (e *Envelope) Suite() Suite {
	return Suite(e.Alg)
}

// Serialize encodes the envelope as deterministic JSON text.
func (e *Envelope) Serialize() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("serialize envelope: %w", err)
	}
	return string(data), nil
}

// ParseEnvelope decodes envelope text, rejecting anything that is not a
// complete well-formed envelope.
//
// Text that is not valid JSON, carries unknown fields, or is missing any
// required field fails with [ErrMalformedEnvelope]. A well-formed
// envelope declaring an unrecognized suite fails with
// [ErrUnsupportedSuite] — suite recognition is a distinct failure point
// from decryption itself.
func ParseEnvelope(text string) (*Envelope, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after envelope", ErrMalformedEnvelope)
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// validate checks that every envelope field is present and non-empty and
// that the declared suite is recognized.
func (e *Envelope) validate() error {
	switch {
	case e.V == 0:
		return fmt.Errorf("%w: missing version", ErrMalformedEnvelope)
	case e.Alg == "":
		return fmt.Errorf("%w: missing algorithm", ErrMalformedEnvelope)
	case e.KEM == "":
		return fmt.Errorf("%w: missing KEM ciphertext", ErrMalformedEnvelope)
	case e.Salt == "":
		return fmt.Errorf("%w: missing salt", ErrMalformedEnvelope)
	case e.Nonce == "":
		return fmt.Errorf("%w: missing nonce", ErrMalformedEnvelope)
	case e.Ciphertext == "":
		return fmt.Errorf("%w: missing ciphertext", ErrMalformedEnvelope)
	case e.T == 0:
		return fmt.Errorf("%w: missing timestamp", ErrMalformedEnvelope)
	}

	if e.V != EnvelopeVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedEnvelope, e.V)
	}

	if !e.Suite().Valid() {
		return &UnsupportedSuiteError{Suite: e.Alg}
	}

	return nil
}
