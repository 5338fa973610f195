// Package encoding is the payload codec: it serializes the payment envelope
// to canonical JSON and wraps it in base64 for header transport. Decoding
// validates the envelope against a JSON Schema before unmarshaling, so a
// decoded payload is always structurally well formed. Business validity
// (recognized schemes and networks, time windows) is the validation
// engine's job, not the codec's.
package encoding

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	nova402 "github.com/nova402/novax402"
	"github.com/nova402/novax402/types"
)

// EncodeX402Payload serializes an envelope to its canonical JSON form.
func EncodeX402Payload(payload *types.PaymentPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nova402.NewError(nova402.ErrMalformedPayload, err)
	}
	return data, nil
}

// DecodeX402Payload parses envelope JSON, rejecting structurally invalid
// documents before unmarshaling.
func DecodeX402Payload(data []byte) (*types.PaymentPayload, error) {
	result, err := envelopeSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, nova402.NewError(nova402.ErrMalformedPayload, err)
	}
	if !result.Valid() {
		return nil, schemaError(result)
	}

	var payload types.PaymentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nova402.NewError(nova402.ErrMalformedPayload, err)
	}
	return &payload, nil
}

// EncodePaymentToBase64 encodes an envelope for header transport.
func EncodePaymentToBase64(payload *types.PaymentPayload) (string, error) {
	data, err := EncodeX402Payload(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodePaymentFromBase64 decodes a header value produced by
// EncodePaymentToBase64.
func DecodePaymentFromBase64(value string) (*types.PaymentPayload, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, nova402.NewError(nova402.ErrInvalidBase64, err)
	}
	return DecodeX402Payload(data)
}

// schemaError maps the first schema violation to the error taxonomy,
// distinguishing missing required fields from other malformations.
func schemaError(result *gojsonschema.Result) error {
	for _, desc := range result.Errors() {
		if desc.Type() == "required" {
			if prop, ok := desc.Details()["property"].(string); ok {
				return nova402.NewFieldError(nova402.ErrMissingField, prop)
			}
		}
	}
	if errs := result.Errors(); len(errs) > 0 {
		return nova402.NewFieldError(nova402.ErrMalformedPayload, fmt.Sprintf("%s: %s", errs[0].Field(), errs[0].Description()))
	}
	return nova402.NewFieldError(nova402.ErrMalformedPayload, "schema validation failed")
}
