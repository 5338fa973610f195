package signature

import (
	nova402 "github.com/nova402/novax402"
)

// Components is the (r, s, v) triple decomposed from a 65-byte signature.
// V is always held in the {0,1} convention regardless of how the signature
// was encoded on input.
type Components struct {
	R [32]byte
	S [32]byte
	V uint8
}

// ParseComponents decomposes a 65-byte signature. Legacy {27,28} recovery
// ids are normalized to {0,1}.
func ParseComponents(sig []byte) (Components, error) {
	normalized, err := normalize(sig)
	if err != nil {
		return Components{}, err
	}
	var c Components
	copy(c.R[:], normalized[:32])
	copy(c.S[:], normalized[32:64])
	c.V = normalized[64]
	return c, nil
}

// Bytes recomposes the 65-byte signature with v in the {0,1} convention.
func (c Components) Bytes() ([]byte, error) {
	if c.V > 1 {
		return nil, nova402.NewFieldError(nova402.ErrMalformedSignature, "recovery id must be 0 or 1")
	}
	out := make([]byte, nova402.SignatureSize)
	copy(out[:32], c.R[:])
	copy(out[32:64], c.S[:])
	out[64] = c.V
	return out, nil
}

// LegacyV returns the recovery id in the legacy {27,28} convention used by
// on-chain transferWithAuthorization calls.
func (c Components) LegacyV() uint8 {
	return c.V + 27
}
