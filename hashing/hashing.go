// Package hashing provides the digest primitives the rest of the core is
// built on. Every function is deterministic, allocation-light, and never
// fails for any input length.
package hashing

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	nova402 "github.com/nova402/novax402"
	"github.com/nova402/novax402/types"
)

// Keccak256 computes the Ethereum-style Keccak-256 digest of data.
func Keccak256(data []byte) common.Hash {
	return common.BytesToHash(crypto.Keccak256(data))
}

// DoubleKeccak256 applies Keccak-256 twice. Used for derived identifiers
// where resistance against length-extension-style constructions is wanted.
func DoubleKeccak256(data []byte) common.Hash {
	first := crypto.Keccak256(data)
	return common.BytesToHash(crypto.Keccak256(first))
}

// SHA256 computes the SHA-256 digest of data.
func SHA256(data []byte) common.Hash {
	return common.Hash(sha256.Sum256(data))
}

// SHA3256 computes the NIST SHA3-256 digest of data. Note this differs from
// Keccak256: the two use different padding and produce different digests.
func SHA3256(data []byte) common.Hash {
	return common.Hash(sha3.Sum256(data))
}

// HashConcat hashes the byte-wise concatenation of two digests with
// Keccak-256, in the positional order given. The Merkle engine sorts its
// children before calling this; callers that need positional pairing can use
// it directly.
func HashConcat(a, b common.Hash) common.Hash {
	combined := make([]byte, 0, 2*common.HashLength)
	combined = append(combined, a[:]...)
	combined = append(combined, b[:]...)
	return common.BytesToHash(crypto.Keccak256(combined))
}

// HashString hashes the UTF-8 bytes of s with Keccak-256.
func HashString(s string) common.Hash {
	return Keccak256([]byte(s))
}

// HashPaymentData computes the canonical digest of a payment's semantic
// fields. The preimage is the pipe-joined sequence
//
//	scheme | network | signer | amount | deadline
//
// with scheme, network, and signer lowercased. Field order and separators are
// fixed; two implementations that agree on the fields produce identical
// digests. For signing EVM authorizations use the EIP-712 path instead.
func HashPaymentData(data types.PaymentData) common.Hash {
	preimage := strings.Join([]string{
		strings.ToLower(data.Scheme),
		strings.ToLower(data.Network),
		strings.ToLower(data.Signer),
		data.Amount,
		fmt.Sprintf("%d", data.Deadline),
	}, "|")
	return Keccak256([]byte(preimage))
}

// ByAlgorithm hashes data with the algorithm named by tag. Recognized tags
// are "keccak256", "sha256", and "sha3-256".
func ByAlgorithm(tag string, data []byte) (common.Hash, error) {
	switch tag {
	case "keccak256":
		return Keccak256(data), nil
	case "sha256":
		return SHA256(data), nil
	case "sha3-256":
		return SHA3256(data), nil
	default:
		return common.Hash{}, nova402.NewFieldError(nova402.ErrUnknownAlgorithm, tag)
	}
}
