package qseal

import (
	"errors"
	"testing"
)

func testEnvelope() *Envelope {
	return &Envelope{
		V:          EnvelopeVersion,
		Alg:        string(SuiteBalanced),
		KEM:        "a2Vt",
		Salt:       "c2FsdA",
		Nonce:      "bm9uY2U",
		Ciphertext: "Y2lwaGVydGV4dA",
		T:          1735689600,
	}
}

func TestEnvelopeSerializeParseRoundTrip(t *testing.T) {
	env := testEnvelope()

	text, err := env.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := ParseEnvelope(text)
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}

	if *parsed != *env {
		t.Errorf("round trip mismatch: got %+v, want %+v", parsed, env)
	}
}

func TestEnvelopeSerialize_Deterministic(t *testing.T) {
	env := testEnvelope()

	text1, err := env.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	text2, err := env.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	if text1 != text2 {
		t.Error("serialization of the same envelope differs between calls")
	}
}

func TestEnvelope_Suite(t *testing.T) {
	env := testEnvelope()
	if env.Suite() != SuiteBalanced {
		t.Errorf("Suite() = %s, want %s", env.Suite(), SuiteBalanced)
	}
}

func TestParseEnvelope_UnsupportedSuite(t *testing.T) {
	env := testEnvelope()
	env.Alg = "X25519"

	text, err := env.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	_, err = ParseEnvelope(text)
	if !errors.Is(err, ErrUnsupportedSuite) {
		t.Errorf("expected ErrUnsupportedSuite, got %v", err)
	}

	var suiteErr *UnsupportedSuiteError
	if !errors.As(err, &suiteErr) {
		t.Fatalf("expected *UnsupportedSuiteError, got %T", err)
	}
	if suiteErr.Suite != "X25519" {
		t.Errorf("Suite = %q, want %q", suiteErr.Suite, "X25519")
	}
}

func TestParseEnvelope_FieldValidation(t *testing.T) {
	mutate := func(fn func(*Envelope)) string {
		env := testEnvelope()
		fn(env)
		text, err := env.Serialize()
		if err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		return text
	}

	tests := []struct {
		name string
		text string
	}{
		{"zero version", mutate(func(e *Envelope) { e.V = 0 })},
		{"empty alg", mutate(func(e *Envelope) { e.Alg = "" })},
		{"empty kem", mutate(func(e *Envelope) { e.KEM = "" })},
		{"empty salt", mutate(func(e *Envelope) { e.Salt = "" })},
		{"empty nonce", mutate(func(e *Envelope) { e.Nonce = "" })},
		{"empty ciphertext", mutate(func(e *Envelope) { e.Ciphertext = "" })},
		{"zero timestamp", mutate(func(e *Envelope) { e.T = 0 })},
		{"future version", mutate(func(e *Envelope) { e.V = EnvelopeVersion + 1 })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope(tt.text)
			if !errors.Is(err, ErrMalformedEnvelope) {
				t.Errorf("expected ErrMalformedEnvelope, got %v", err)
			}
		})
	}
}
