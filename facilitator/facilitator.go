// Package facilitator implements offline payment verification: given a
// decoded envelope and the requirements it claims to satisfy, it checks the
// envelope structurally, temporally, and cryptographically. Verification is
// pure; settlement and any chain interaction live with the caller.
package facilitator

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	nova402 "github.com/nova402/novax402"
	"github.com/nova402/novax402/networks"
	"github.com/nova402/novax402/signature"
	"github.com/nova402/novax402/types"
	"github.com/nova402/novax402/validation"
)

// Default EIP-712 domain parameters for USDC deployments. Requirements may
// override them through the extra fields "name" and "version".
const (
	defaultTokenName    = "USD Coin"
	defaultTokenVersion = "2"
)

// Verify checks a payment envelope against its requirements at the given
// moment. It returns a result rather than an error for every way the payment
// can be unacceptable; errors are reserved for malformed requirements.
func Verify(payload *types.PaymentPayload, requirements *types.PaymentRequirements, now int64) *types.VerificationResult {
	if payload == nil {
		return invalid("missing_payload", "")
	}
	if requirements == nil {
		return invalid("missing_requirements", "")
	}

	if payload.X402Version != requirements.X402Version {
		return invalid("version_mismatch", "")
	}
	if payload.Scheme != requirements.Scheme {
		return invalid("scheme_mismatch", "")
	}
	if payload.Network != requirements.Network {
		return invalid("network_mismatch", "")
	}

	data, err := types.PaymentDataFrom(payload)
	if err != nil {
		return invalid("missing_authorization", "")
	}
	if err := validation.ValidatePaymentData(data); err != nil {
		return invalid(reasonFor(err), data.Signer)
	}

	auth := payload.Payload.Authorization
	if payload.Payload.Signature == "" {
		return invalid("missing_signature", auth.From)
	}
	if !strings.EqualFold(auth.To, requirements.PayTo) {
		return invalid("recipient_mismatch", auth.From)
	}

	authValue, ok := new(big.Int).SetString(auth.Value, 10)
	if !ok {
		return invalid("invalid_authorization_value", auth.From)
	}
	requiredValue, ok := new(big.Int).SetString(requirements.MaxAmountRequired, 10)
	if !ok {
		return invalid("invalid_required_amount", auth.From)
	}
	if authValue.Cmp(requiredValue) < 0 {
		return invalid("insufficient_amount", auth.From)
	}

	if validation.IsPaymentExpired(auth.ValidBefore, now) {
		return invalid("payment_expired", auth.From)
	}
	if !validation.IsPaymentValidNow(auth.ValidBefore, auth.ValidAfter, now) {
		return invalid("payment_not_valid_yet", auth.From)
	}

	chainID, err := networks.ChainID(payload.Network)
	if err != nil {
		return invalid("unsupported_network", auth.From)
	}

	tokenName, tokenVersion := defaultTokenName, defaultTokenVersion
	if requirements.Extra != nil {
		if name, ok := requirements.Extra["name"].(string); ok {
			tokenName = name
		}
		if version, ok := requirements.Extra["version"].(string); ok {
			tokenVersion = version
		}
	}

	digest, err := signature.HashEIP3009Authorization(*auth, chainID, requirements.Asset, tokenName, tokenVersion)
	if err != nil {
		return invalid("failed_to_hash_authorization", auth.From)
	}

	sigBytes, err := hexutil.Decode(ensureHexPrefix(payload.Payload.Signature))
	if err != nil {
		return invalid("invalid_signature_format", auth.From)
	}

	recovered, err := signature.RecoverSignerFromDigest(digest, sigBytes)
	if err != nil {
		return invalid("failed_to_verify_signature", auth.From)
	}
	if !strings.EqualFold(recovered.Hex(), auth.From) {
		return invalid("signer_mismatch", auth.From)
	}

	return &types.VerificationResult{IsValid: true, Payer: recovered.Hex()}
}

func invalid(reason, payer string) *types.VerificationResult {
	return &types.VerificationResult{IsValid: false, InvalidReason: reason, Payer: payer}
}

// reasonFor maps a structural validation failure to its wire reason code.
func reasonFor(err error) string {
	var cerr *nova402.CryptoError
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case nova402.ErrUnsupportedScheme:
			return "unsupported_scheme"
		case nova402.ErrUnsupportedNetwork:
			return "unsupported_network"
		case nova402.ErrInvalidAddress:
			return "invalid_address"
		case nova402.ErrInvalidAmount:
			return "invalid_authorization_value"
		}
	}
	return "invalid_payload"
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}
