// Package signature creates and verifies ECDSA (secp256k1) signatures over
// payment messages, recovers signer addresses, and splits signatures into
// their r/s/v components. All failures are returned as values; malformed
// attacker-supplied input never panics.
package signature

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	nova402 "github.com/nova402/novax402"
)

// SignPayment signs the Keccak-256 digest of message with the given 32-byte
// private key and returns the 65-byte signature (r ‖ s ‖ v, v in {0,1}).
// Signing is deterministic (RFC 6979 nonces): the same key and message always
// produce the same signature.
func SignPayment(message []byte, privateKey []byte) ([]byte, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, nova402.NewError(nova402.ErrInvalidPrivateKey, err)
	}

	digest := crypto.Keccak256(message)
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, nova402.NewError(nova402.ErrInvalidPrivateKey, err)
	}
	return sig, nil
}

// SignDigest signs an already computed 32-byte digest, as needed for EIP-712
// typed data where the digest construction is not a plain Keccak-256 of the
// message bytes.
func SignDigest(digest common.Hash, privateKey []byte) ([]byte, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, nova402.NewError(nova402.ErrInvalidPrivateKey, err)
	}

	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		return nil, nova402.NewError(nova402.ErrInvalidPrivateKey, err)
	}
	return sig, nil
}

// RecoverSigner recovers the address that signed message. Both the modern
// {0,1} and legacy {27,28} recovery id encodings are accepted.
func RecoverSigner(message []byte, sig []byte) (common.Address, error) {
	normalized, err := normalize(sig)
	if err != nil {
		return common.Address{}, err
	}

	digest := crypto.Keccak256(message)
	pubKey, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, nova402.NewError(nova402.ErrRecoveryFailed, err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// RecoverSignerFromDigest recovers the signing address from an already
// computed 32-byte digest, as needed for EIP-712 typed data where the digest
// construction is not a plain Keccak-256 of the message bytes.
func RecoverSignerFromDigest(digest common.Hash, sig []byte) (common.Address, error) {
	normalized, err := normalize(sig)
	if err != nil {
		return common.Address{}, err
	}

	pubKey, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return common.Address{}, nova402.NewError(nova402.ErrRecoveryFailed, err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// VerifySignature reports whether sig over message was produced by
// expectedAddress. A valid signature from a different signer yields
// (false, nil); only structurally invalid input yields an error.
func VerifySignature(message []byte, sig []byte, expectedAddress common.Address) (bool, error) {
	recovered, err := RecoverSigner(message, sig)
	if err != nil {
		return false, err
	}
	return recovered == expectedAddress, nil
}

// normalize returns a copy of sig with the recovery id mapped from the
// legacy {27,28} convention to {0,1}.
func normalize(sig []byte) ([]byte, error) {
	if len(sig) != nova402.SignatureSize {
		return nil, nova402.NewFieldError(nova402.ErrMalformedSignature, "expected 65 bytes")
	}
	out := make([]byte, nova402.SignatureSize)
	copy(out, sig)
	switch out[64] {
	case 0, 1:
	case 27, 28:
		out[64] -= 27
	default:
		return nil, nova402.NewFieldError(nova402.ErrMalformedSignature, "recovery id must be 0, 1, 27, or 28")
	}
	return out, nil
}
