// Package nova402 provides the cryptographic and data-integrity core of the
// x402 machine payment protocol: canonical hashing, Merkle batching, ECDSA
// signature creation and recovery, payload encoding, and payment validation.
//
// The core produces and consumes byte-exact payment artifacts only. On-chain
// submission, RPC communication, and persistence are left to callers.
package nova402

// Protocol constants
const (
	// X402Version is the x402 protocol version carried in every envelope
	X402Version = 1

	// MaxDeadlineSeconds is the maximum payment deadline from issuance (30 days)
	MaxDeadlineSeconds = 30 * 24 * 60 * 60

	// DefaultTimeoutSeconds is the default payment validity duration (5 minutes)
	DefaultTimeoutSeconds = 300

	// DefaultValidityBuffer is subtracted from validAfter to absorb clock skew
	DefaultValidityBuffer = 60

	// DefaultMimeType is the default response MIME type in payment requirements
	DefaultMimeType = "application/json"
)

// Wire sizes
const (
	// HashSize is the size of every digest produced by the hashing engine
	HashSize = 32

	// AddressSize is the size of an EVM address in bytes
	AddressSize = 20

	// SignatureSize is the size of a serialized ECDSA signature (r ‖ s ‖ v)
	SignatureSize = 65

	// NonceSize is the size of an EIP-3009 authorization nonce
	NonceSize = 32
)
