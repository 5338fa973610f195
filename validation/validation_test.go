package validation

import (
	"errors"
	"testing"

	nova402 "github.com/nova402/novax402"
	"github.com/nova402/novax402/types"
)

func TestValidateChainID(t *testing.T) {
	if ValidateChainID(0) {
		t.Error("chain id 0 must be invalid")
	}
	for _, id := range []uint64{1, 8453, 84532, 137} {
		if !ValidateChainID(id) {
			t.Errorf("chain id %d must be valid", id)
		}
	}
}

func TestValidateNetwork(t *testing.T) {
	valid := []string{
		"base-mainnet",
		"base-sepolia",
		"solana-mainnet",
		"eip155:8453",
		"eip155:1",
		"solana:mainnet",
		"solana:devnet",
		"solana:EtWTRABZaYq6iMfeYKouRu166VU2xqa1QTqsnyn3SF7tVS", // genesis hash
	}
	for _, name := range valid {
		if !ValidateNetwork(name) {
			t.Errorf("network %q must be valid", name)
		}
	}

	invalid := []string{
		"",
		"invalid",
		"eip155:0",
		"eip155:-1",
		"eip155:abc",
		"solana:",
		"solana:not-a-cluster-or-hash!",
		"bitcoin:mainnet",
	}
	for _, name := range invalid {
		if ValidateNetwork(name) {
			t.Errorf("network %q must be invalid", name)
		}
	}
}

func TestValidateScheme(t *testing.T) {
	for _, name := range []string{"exact", "upto", "subscription"} {
		if !ValidateScheme(name) {
			t.Errorf("scheme %q must be valid", name)
		}
	}
	for _, name := range []string{"", "Exact", "streaming"} {
		if ValidateScheme(name) {
			t.Errorf("scheme %q must be invalid", name)
		}
	}
}

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"0x14791697260E4c9A71f18484C9f997B308e59325",
		"0x0000000000000000000000000000000000000001",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", // Solana mint
	}
	for _, addr := range valid {
		if !ValidateAddress(addr) {
			t.Errorf("address %q must be valid", addr)
		}
	}

	invalid := []string{
		"",
		"0x123",
		"0x14791697260E4c9A71f18484C9f997B308e5932", // 19 bytes
		"not an address",
		"0OIl", // illegal base58
	}
	for _, addr := range invalid {
		if ValidateAddress(addr) {
			t.Errorf("address %q must be invalid", addr)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	for _, v := range []string{"0", "1", "1000000", "99999999999999999999999999"} {
		if !ValidateAmount(v) {
			t.Errorf("amount %q must be valid", v)
		}
	}
	for _, v := range []string{"", "-1", "1.5", "0x10", "abc", "1e6"} {
		if ValidateAmount(v) {
			t.Errorf("amount %q must be invalid", v)
		}
	}
}

func TestValidatePaymentData(t *testing.T) {
	base := types.PaymentData{
		Scheme:   "exact",
		Network:  "base-mainnet",
		Amount:   "1000000",
		Deadline: 1700000600,
		Signer:   "0x14791697260E4c9A71f18484C9f997B308e59325",
	}

	if err := ValidatePaymentData(base); err != nil {
		t.Fatalf("valid data rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*types.PaymentData)
		kind   nova402.ErrorKind
	}{
		{"bad scheme", func(d *types.PaymentData) { d.Scheme = "streaming" }, nova402.ErrUnsupportedScheme},
		{"bad network", func(d *types.PaymentData) { d.Network = "invalid" }, nova402.ErrUnsupportedNetwork},
		{"bad signer", func(d *types.PaymentData) { d.Signer = "0x123" }, nova402.ErrInvalidAddress},
		{"bad amount", func(d *types.PaymentData) { d.Amount = "-1" }, nova402.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := base
			tt.mutate(&data)
			err := ValidatePaymentData(data)
			var cerr *nova402.CryptoError
			if !errors.As(err, &cerr) || cerr.Kind != tt.kind {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestIsPaymentExpired(t *testing.T) {
	const deadline = int64(1700000000)

	// Still live exactly at the deadline, expired strictly after.
	if IsPaymentExpired(deadline, deadline) {
		t.Error("payment must still be live at now == deadline")
	}
	if !IsPaymentExpired(deadline, deadline+1) {
		t.Error("payment must be expired one second past the deadline")
	}
	if IsPaymentExpired(deadline, deadline-1) {
		t.Error("payment must not be expired before the deadline")
	}
}

func TestIsPaymentValidNow(t *testing.T) {
	const (
		validAfter = int64(1700000000)
		deadline   = int64(1700000600)
	)

	tests := []struct {
		name string
		now  int64
		want bool
	}{
		{"before window", validAfter - 1, false},
		{"window opens", validAfter, true},
		{"inside window", validAfter + 300, true},
		{"window closes", deadline, true},
		{"after window", deadline + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPaymentValidNow(deadline, validAfter, tt.now); got != tt.want {
				t.Errorf("IsPaymentValidNow(now=%d) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}

	t.Run("deadline too far out", func(t *testing.T) {
		now := validAfter
		farDeadline := now + nova402.MaxDeadlineSeconds + 1
		if IsPaymentValidNow(farDeadline, validAfter, now) {
			t.Error("deadlines beyond the cap must be rejected")
		}
		atCap := now + nova402.MaxDeadlineSeconds
		if !IsPaymentValidNow(atCap, validAfter, now) {
			t.Error("deadline exactly at the cap must be accepted")
		}
	})
}
