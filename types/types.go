// Package types defines the x402 payment data model: requirements issued by
// a payee, authorizations signed by a payer, and the wire envelope that
// carries them. All values are immutable once constructed.
package types

import (
	nova402 "github.com/nova402/novax402"
)

// PaymentScheme identifies a payment scheme tag.
type PaymentScheme string

const (
	SchemeExact        PaymentScheme = "exact"
	SchemeUpto         PaymentScheme = "upto"
	SchemeSubscription PaymentScheme = "subscription"
)

// NetworkType classifies a network into a blockchain family.
type NetworkType string

const (
	NetworkTypeEVM    NetworkType = "evm"
	NetworkTypeSolana NetworkType = "solana"
)

// PaymentRequirements is what a payee demands for a resource. Immutable once
// issued.
type PaymentRequirements struct {
	X402Version       int                    `json:"x402Version"`
	Scheme            string                 `json:"scheme"`
	Network           string                 `json:"network"`
	MaxAmountRequired string                 `json:"maxAmountRequired"`
	Resource          string                 `json:"resource"`
	Description       string                 `json:"description"`
	MimeType          string                 `json:"mimeType"`
	PayTo             string                 `json:"payTo"`
	MaxTimeoutSeconds int                    `json:"maxTimeoutSeconds"`
	Asset             string                 `json:"asset"`
	Extra             map[string]interface{} `json:"extra,omitempty"`
}

// EIP3009Authorization is an EVM TransferWithAuthorization meta-transaction.
type EIP3009Authorization struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	ValidAfter  int64  `json:"validAfter"`
	ValidBefore int64  `json:"validBefore"`
	Nonce       string `json:"nonce"` // 32-byte nonce as 0x-prefixed hex
}

// PaymentAuthorization wraps an authorization with its 65-byte signature
// (r ‖ s ‖ v, hex encoded). For non-EVM networks the authorization is absent
// and Transaction/Signatures carry the network-native equivalent.
type PaymentAuthorization struct {
	Signature     string                `json:"signature,omitempty"`
	Authorization *EIP3009Authorization `json:"authorization,omitempty"`
	Transaction   *string               `json:"transaction,omitempty"`
	Signatures    []string              `json:"signatures,omitempty"`
}

// PaymentPayload is the wire envelope carried base64-encoded in the
// X-Payment header.
type PaymentPayload struct {
	X402Version int                  `json:"x402Version"`
	Scheme      string               `json:"scheme"`
	Network     string               `json:"network"`
	Payload     PaymentAuthorization `json:"payload"`
}

// PaymentData is the semantic union of requirements and authorization needed
// to evaluate a payment.
type PaymentData struct {
	Scheme   string
	Network  string
	Amount   string // integer, smallest unit
	Deadline int64  // unix seconds
	Signer   string
}

// Payment402Response is the body of an HTTP 402 Payment Required response.
type Payment402Response struct {
	X402Version int                   `json:"x402Version"`
	Accepts     []PaymentRequirements `json:"accepts"`
	Error       string                `json:"error,omitempty"`
}

// VerificationResult is the outcome of off-chain payment verification.
type VerificationResult struct {
	IsValid       bool                   `json:"isValid"`
	InvalidReason string                 `json:"invalidReason,omitempty"`
	Payer         string                 `json:"payer,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// NewPaymentRequirements creates payment requirements for a resource with
// protocol defaults filled in.
func NewPaymentRequirements(price, asset, network, payTo, resource, description string) PaymentRequirements {
	return PaymentRequirements{
		X402Version:       nova402.X402Version,
		Scheme:            string(SchemeExact),
		Network:           network,
		MaxAmountRequired: price,
		Resource:          resource,
		Description:       description,
		MimeType:          nova402.DefaultMimeType,
		PayTo:             payTo,
		MaxTimeoutSeconds: nova402.DefaultTimeoutSeconds,
		Asset:             asset,
	}
}

// New402Response builds a 402 Payment Required body advertising the given
// requirements.
func New402Response(requirements []PaymentRequirements, errMsg string) Payment402Response {
	return Payment402Response{
		X402Version: nova402.X402Version,
		Accepts:     requirements,
		Error:       errMsg,
	}
}

// PaymentDataFrom extracts the semantic payment fields from a decoded
// envelope. Returns a malformed-payload error when the envelope has no
// authorization to evaluate.
func PaymentDataFrom(payload *PaymentPayload) (PaymentData, error) {
	auth := payload.Payload.Authorization
	if auth == nil {
		return PaymentData{}, nova402.NewFieldError(nova402.ErrMissingField, "authorization")
	}
	return PaymentData{
		Scheme:   payload.Scheme,
		Network:  payload.Network,
		Amount:   auth.Value,
		Deadline: auth.ValidBefore,
		Signer:   auth.From,
	}, nil
}
