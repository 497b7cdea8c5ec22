package qseal

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/qseal/envelope-go/internal/crypto"
)

func TestGenerateKeyPair(t *testing.T) {
	for _, ts := range testSuites {
		t.Run(ts.name, func(t *testing.T) {
			kp := generateTestKeyPair(t, ts.suite)

			if kp.Suite != ts.suite {
				t.Errorf("Suite = %s, want %s", kp.Suite, ts.suite)
			}
			if len(kp.PublicKey) != ts.suite.PublicKeySize() {
				t.Errorf("public key size = %d, want %d", len(kp.PublicKey), ts.suite.PublicKeySize())
			}
			if len(kp.PrivateKey) != ts.suite.PrivateKeySize() {
				t.Errorf("private key size = %d, want %d", len(kp.PrivateKey), ts.suite.PrivateKeySize())
			}
		})
	}
}

func TestGenerateKeyPair_Uniqueness(t *testing.T) {
	kp1 := generateTestKeyPair(t, SuiteBalanced)
	kp2 := generateTestKeyPair(t, SuiteBalanced)

	if bytes.Equal(kp1.PublicKey, kp2.PublicKey) {
		t.Error("generated key pairs have identical public keys")
	}
	if bytes.Equal(kp1.PrivateKey, kp2.PrivateKey) {
		t.Error("generated key pairs have identical private keys")
	}
}

func TestGenerateKeyPair_UnsupportedSuite(t *testing.T) {
	_, err := GenerateKeyPair(Suite("RSA-2048"))
	if !errors.Is(err, ErrUnsupportedSuite) {
		t.Errorf("expected ErrUnsupportedSuite, got %v", err)
	}

	var suiteErr *UnsupportedSuiteError
	if !errors.As(err, &suiteErr) {
		t.Fatalf("expected *UnsupportedSuiteError, got %T", err)
	}
	if suiteErr.Suite != "RSA-2048" {
		t.Errorf("Suite = %q, want %q", suiteErr.Suite, "RSA-2048")
	}
}

func TestKeyPair_Zeroize(t *testing.T) {
	kp := generateTestKeyPair(t, SuiteBalanced)

	kp.Zeroize()

	for i, b := range kp.PrivateKey {
		if b != 0 {
			t.Fatalf("PrivateKey[%d] = %d, want 0", i, b)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, ts := range testSuites {
		t.Run(ts.name, func(t *testing.T) {
			kp := generateTestKeyPair(t, ts.suite)

			record := kp.Export()

			if record.Algorithm != string(ts.suite) {
				t.Errorf("Algorithm = %q, want %q", record.Algorithm, ts.suite)
			}
			if record.Version != KeyRecordVersion {
				t.Errorf("Version = %q, want %q", record.Version, KeyRecordVersion)
			}
			if record.Timestamp == 0 {
				t.Error("Timestamp is zero")
			}

			imported, err := ImportKeyPair(record)
			if err != nil {
				t.Fatalf("ImportKeyPair() error = %v", err)
			}

			if !bytes.Equal(imported.PublicKey, kp.PublicKey) {
				t.Error("imported public key does not match original")
			}
			if !bytes.Equal(imported.PrivateKey, kp.PrivateKey) {
				t.Error("imported private key does not match original")
			}
			if imported.Suite != kp.Suite {
				t.Errorf("imported Suite = %s, want %s", imported.Suite, kp.Suite)
			}
		})
	}
}

func TestExportImport_ThroughJSON(t *testing.T) {
	kp := generateTestKeyPair(t, SuiteHigh)

	data, err := json.Marshal(kp.Export())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var record ExportedKeyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	imported, err := ImportKeyPair(&record)
	if err != nil {
		t.Fatalf("ImportKeyPair() error = %v", err)
	}
	if !bytes.Equal(imported.PrivateKey, kp.PrivateKey) {
		t.Error("private key lost in JSON round trip")
	}
}

func TestImportKeyPair_LegacyDefaultSuite(t *testing.T) {
	kp := generateTestKeyPair(t, DefaultSuite)

	// A legacy record carries no algorithm tag; it must import as the
	// default suite, stated explicitly rather than inferred from length.
	record := kp.Export()
	record.Algorithm = ""

	imported, err := ImportKeyPair(record)
	if err != nil {
		t.Fatalf("ImportKeyPair() error = %v", err)
	}
	if imported.Suite != DefaultSuite {
		t.Errorf("Suite = %s, want %s", imported.Suite, DefaultSuite)
	}
	if !bytes.Equal(imported.PublicKey, kp.PublicKey) {
		t.Error("public key mismatch")
	}
}

func TestImportKeyPair_BareKeysOnly(t *testing.T) {
	kp := generateTestKeyPair(t, SuiteBalanced)

	// Only publicKey and privateKey set, everything else absent.
	record := &ExportedKeyRecord{
		PublicKey:  crypto.ToBase64URL(kp.PublicKey),
		PrivateKey: crypto.ToBase64URL(kp.PrivateKey),
	}

	imported, err := ImportKeyPair(record)
	if err != nil {
		t.Fatalf("ImportKeyPair() error = %v", err)
	}
	if imported.Suite != DefaultSuite {
		t.Errorf("Suite = %s, want %s", imported.Suite, DefaultSuite)
	}
}

func TestImportKeyPair_Malformed(t *testing.T) {
	kp := generateTestKeyPair(t, SuiteBalanced)
	valid := kp.Export()

	tests := []struct {
		name   string
		record *ExportedKeyRecord
	}{
		{"nil record", nil},
		{"missing public key", &ExportedKeyRecord{PrivateKey: valid.PrivateKey}},
		{"missing private key", &ExportedKeyRecord{PublicKey: valid.PublicKey}},
		{"bad public key encoding", &ExportedKeyRecord{PublicKey: "+/=", PrivateKey: valid.PrivateKey}},
		{"bad private key encoding", &ExportedKeyRecord{PublicKey: valid.PublicKey, PrivateKey: "+/="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportKeyPair(tt.record)
			if !errors.Is(err, ErrMalformedKeyRecord) {
				t.Errorf("expected ErrMalformedKeyRecord, got %v", err)
			}
		})
	}
}

func TestImportKeyPair_UnsupportedSuite(t *testing.T) {
	kp := generateTestKeyPair(t, SuiteBalanced)
	record := kp.Export()
	record.Algorithm = "FrodoKEM-976"

	_, err := ImportKeyPair(record)
	if !errors.Is(err, ErrUnsupportedSuite) {
		t.Errorf("expected ErrUnsupportedSuite, got %v", err)
	}
}

func TestValidatePublicKey(t *testing.T) {
	balanced := generateTestKeyPair(t, SuiteBalanced)
	high := generateTestKeyPair(t, SuiteHigh)

	tests := []struct {
		name  string
		key   string
		suite Suite
		want  bool
	}{
		{"valid balanced", crypto.ToBase64URL(balanced.PublicKey), SuiteBalanced, true},
		{"valid high", crypto.ToBase64URL(high.PublicKey), SuiteHigh, true},
		{"empty", "", SuiteBalanced, false},
		{"invalid encoding", "not_valid!base64", SuiteBalanced, false},
		{"wrong suite for size", crypto.ToBase64URL(balanced.PublicKey), SuiteHigh, false},
		{"cross-tier", crypto.ToBase64URL(high.PublicKey), SuiteBalanced, false},
		{"truncated", crypto.ToBase64URL(balanced.PublicKey[:100]), SuiteBalanced, false},
		{"all zero", crypto.ToBase64URL(make([]byte, SuiteBalanced.PublicKeySize())), SuiteBalanced, false},
		{"unrecognized suite", crypto.ToBase64URL(balanced.PublicKey), Suite("ML-KEM-512"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePublicKey(tt.key, tt.suite); got != tt.want {
				t.Errorf("ValidatePublicKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
