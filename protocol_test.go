package nova402

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func TestCreateNonce(t *testing.T) {
	nonce, err := CreateNonce()
	if err != nil {
		t.Fatalf("CreateNonce: %v", err)
	}
	if !strings.HasPrefix(nonce, "0x") {
		t.Errorf("nonce %q is not 0x-prefixed", nonce)
	}
	raw, err := hex.DecodeString(nonce[2:])
	if err != nil {
		t.Fatalf("nonce is not hex: %v", err)
	}
	if len(raw) != NonceSize {
		t.Errorf("nonce is %d bytes, want %d", len(raw), NonceSize)
	}

	other, err := CreateNonce()
	if err != nil {
		t.Fatalf("CreateNonce: %v", err)
	}
	if nonce == other {
		t.Error("consecutive nonces must differ")
	}
}

func TestCreateValidityWindow(t *testing.T) {
	before := time.Now().Unix()
	validAfter, validBefore := CreateValidityWindow(5 * time.Minute)
	after := time.Now().Unix()

	if validAfter > before-DefaultValidityBuffer+1 || validAfter < before-DefaultValidityBuffer-1 {
		t.Errorf("validAfter = %d, want about now-%d", validAfter, DefaultValidityBuffer)
	}
	if validBefore < before+300 || validBefore > after+300 {
		t.Errorf("validBefore = %d, want about now+300", validBefore)
	}
	if validAfter >= validBefore {
		t.Error("window must be non-empty")
	}
}

func TestCryptoErrorFormatting(t *testing.T) {
	err := NewIndexError(7, 5)
	if got := err.Error(); got != "index_out_of_range: index 7 out of bounds for 5 leaves" {
		t.Errorf("Error() = %q", got)
	}

	ferr := NewFieldError(ErrMissingField, "scheme")
	if got := ferr.Error(); got != "missing_field: scheme" {
		t.Errorf("Error() = %q", got)
	}

	if !IsKind(err, ErrIndexOutOfRange) {
		t.Error("IsKind must match the error's kind")
	}
	if IsKind(err, ErrEmptyTree) {
		t.Error("IsKind must not match a different kind")
	}
}
