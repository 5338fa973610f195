// Package validation contains the pure predicate functions that gate payment
// acceptance: structural checks over schemes, networks, addresses, and
// amounts, plus temporal window checks. Nothing here performs I/O or reads a
// clock; time-dependent predicates take "now" explicitly so they stay
// deterministic under test.
package validation

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	solana "github.com/gagliardetto/solana-go"

	nova402 "github.com/nova402/novax402"
	"github.com/nova402/novax402/networks"
	"github.com/nova402/novax402/types"
)

// ValidateChainID reports whether id is a usable EVM chain ID. Zero is
// always invalid.
func ValidateChainID(id uint64) bool {
	return id > 0
}

// ValidateNetwork reports whether name is a recognized network identifier:
// a CAIP-2 identifier of a supported family ("eip155:<chainid>",
// "solana:<cluster>") or one of the configured human-readable names.
// Arbitrary strings are rejected.
func ValidateNetwork(name string) bool {
	if chainIDStr, ok := strings.CutPrefix(name, "eip155:"); ok {
		chainID, ok := new(big.Int).SetString(chainIDStr, 10)
		return ok && chainID.Sign() > 0
	}
	if cluster, ok := strings.CutPrefix(name, "solana:"); ok {
		switch cluster {
		case "mainnet", "mainnet-beta", "devnet", "testnet":
			return true
		}
		// Clusters may also be identified by their genesis hash.
		_, err := solana.HashFromBase58(cluster)
		return err == nil
	}
	_, ok := networks.Configs[name]
	return ok
}

// ValidateScheme reports whether name is a recognized payment scheme tag.
func ValidateScheme(name string) bool {
	switch types.PaymentScheme(name) {
	case types.SchemeExact, types.SchemeUpto, types.SchemeSubscription:
		return true
	}
	return false
}

// ValidateAddress reports whether addr is correctly shaped for one of the
// supported network families: a 20-byte hex EVM address or a base58 Solana
// public key.
func ValidateAddress(addr string) bool {
	if strings.HasPrefix(addr, "0x") || strings.HasPrefix(addr, "0X") {
		return common.IsHexAddress(addr)
	}
	if common.IsHexAddress(addr) {
		return true
	}
	_, err := solana.PublicKeyFromBase58(addr)
	return err == nil
}

// ValidateAmount reports whether value is a non-negative integer in the
// token's smallest unit.
func ValidateAmount(value string) bool {
	amount, ok := new(big.Int).SetString(value, 10)
	return ok && amount.Sign() >= 0
}

// ValidatePaymentData runs the structural checks over a payment's semantic
// fields, failing with the first violated constraint.
func ValidatePaymentData(data types.PaymentData) error {
	if !ValidateScheme(data.Scheme) {
		return nova402.NewFieldError(nova402.ErrUnsupportedScheme, data.Scheme)
	}
	if !ValidateNetwork(data.Network) {
		return nova402.NewFieldError(nova402.ErrUnsupportedNetwork, data.Network)
	}
	if !ValidateAddress(data.Signer) {
		return nova402.NewFieldError(nova402.ErrInvalidAddress, data.Signer)
	}
	if !ValidateAmount(data.Amount) {
		return nova402.NewFieldError(nova402.ErrInvalidAmount, data.Amount)
	}
	return nil
}

// IsPaymentExpired reports whether the deadline has passed. A payment is
// still live at now == deadline; it expires strictly after.
func IsPaymentExpired(deadline, now int64) bool {
	return now > deadline
}

// IsPaymentValidNow reports whether now falls inside [validAfter, deadline],
// inclusive on both ends. Windows whose deadline lies more than
// MaxDeadlineSeconds past now are rejected outright.
func IsPaymentValidNow(deadline, validAfter, now int64) bool {
	if deadline > now+nova402.MaxDeadlineSeconds {
		return false
	}
	return validAfter <= now && now <= deadline
}
