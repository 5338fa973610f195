package types

import (
	"encoding/json"
	"errors"
	"testing"

	nova402 "github.com/nova402/novax402"
)

func TestNewPaymentRequirementsDefaults(t *testing.T) {
	req := NewPaymentRequirements("1000000", "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		"base-mainnet", "0x9876543210987654321098765432109876543210",
		"https://api.example.com/data", "Market data")

	if req.X402Version != nova402.X402Version {
		t.Errorf("version = %d, want %d", req.X402Version, nova402.X402Version)
	}
	if req.Scheme != string(SchemeExact) {
		t.Errorf("scheme = %s, want exact", req.Scheme)
	}
	if req.MaxTimeoutSeconds != nova402.DefaultTimeoutSeconds {
		t.Errorf("timeout = %d, want %d", req.MaxTimeoutSeconds, nova402.DefaultTimeoutSeconds)
	}
	if req.MimeType != nova402.DefaultMimeType {
		t.Errorf("mime type = %s, want %s", req.MimeType, nova402.DefaultMimeType)
	}
}

func TestNew402Response(t *testing.T) {
	req := NewPaymentRequirements("1", "0x0", "base-mainnet", "0x1", "/r", "")
	resp := New402Response([]PaymentRequirements{req}, "payment required")

	if resp.X402Version != nova402.X402Version {
		t.Errorf("version = %d, want %d", resp.X402Version, nova402.X402Version)
	}
	if len(resp.Accepts) != 1 {
		t.Fatalf("accepts = %d entries, want 1", len(resp.Accepts))
	}
	if resp.Error != "payment required" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestPaymentDataFrom(t *testing.T) {
	payload := &PaymentPayload{
		X402Version: 1,
		Scheme:      "exact",
		Network:     "base-mainnet",
		Payload: PaymentAuthorization{
			Signature: "0xabc",
			Authorization: &EIP3009Authorization{
				From:        "0x14791697260E4c9A71f18484C9f997B308e59325",
				To:          "0x9876543210987654321098765432109876543210",
				Value:       "1000000",
				ValidAfter:  1700000000,
				ValidBefore: 1700000600,
				Nonce:       "0x01",
			},
		},
	}

	data, err := PaymentDataFrom(payload)
	if err != nil {
		t.Fatalf("PaymentDataFrom: %v", err)
	}
	if data.Amount != "1000000" || data.Deadline != 1700000600 {
		t.Errorf("data = %+v", data)
	}
	if data.Signer != payload.Payload.Authorization.From {
		t.Errorf("signer = %s", data.Signer)
	}

	payload.Payload.Authorization = nil
	_, err = PaymentDataFrom(payload)
	var cerr *nova402.CryptoError
	if !errors.As(err, &cerr) || cerr.Kind != nova402.ErrMissingField {
		t.Errorf("error = %v, want missing_field", err)
	}
}

func TestDetectVersion(t *testing.T) {
	v, err := DetectVersion([]byte(`{"x402Version":1,"scheme":"exact"}`))
	if err != nil {
		t.Fatalf("DetectVersion: %v", err)
	}
	if v != 1 {
		t.Errorf("version = %d, want 1", v)
	}

	if _, err := DetectVersion([]byte(`{"scheme":"exact"}`)); err == nil {
		t.Error("missing version must fail")
	}
	if _, err := DetectVersion([]byte(`not json`)); err == nil {
		t.Error("malformed input must fail")
	}
}

func TestExtractSchemeNetwork(t *testing.T) {
	scheme, network, err := ExtractSchemeNetwork([]byte(`{"scheme":"exact","network":"base-sepolia","payload":{}}`))
	if err != nil {
		t.Fatalf("ExtractSchemeNetwork: %v", err)
	}
	if scheme != "exact" || network != "base-sepolia" {
		t.Errorf("got %s/%s", scheme, network)
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	// Wire field names are part of the protocol, not an implementation detail.
	payload := PaymentPayload{
		X402Version: 1,
		Scheme:      "exact",
		Network:     "base-mainnet",
		Payload: PaymentAuthorization{
			Signature:     "0xabc",
			Authorization: &EIP3009Authorization{From: "0x1", To: "0x2", Value: "1", Nonce: "0x01"},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"x402Version", "scheme", "network", "payload"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("envelope is missing wire field %q", key)
		}
	}

	inner := raw["payload"].(map[string]interface{})
	auth := inner["authorization"].(map[string]interface{})
	for _, key := range []string{"from", "to", "value", "validAfter", "validBefore", "nonce"} {
		if _, ok := auth[key]; !ok {
			t.Errorf("authorization is missing wire field %q", key)
		}
	}
}

func TestSVMAuthorizationCanonicalBytes(t *testing.T) {
	var nonce [32]byte
	nonce[31] = 1

	auth, err := SVMAuthorizationFromBase58(
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
		1_000_000, 1700000000, 1700000600, nonce,
	)
	if err != nil {
		t.Fatalf("SVMAuthorizationFromBase58: %v", err)
	}

	data, err := auth.CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %v", err)
	}
	// 32 + 32 + 8 + 8 + 8 + 32 bytes of fixed-width Borsh fields.
	if len(data) != 120 {
		t.Errorf("canonical form = %d bytes, want 120", len(data))
	}

	// Serialization is deterministic.
	again, err := auth.CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %v", err)
	}
	for i := range data {
		if data[i] != again[i] {
			t.Fatal("canonical bytes must be deterministic")
		}
	}

	t.Run("rejects bad addresses", func(t *testing.T) {
		if _, err := SVMAuthorizationFromBase58("not-base58!", "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU", 1, 0, 1, nonce); err == nil {
			t.Error("invalid source must be rejected")
		}
	})
}
