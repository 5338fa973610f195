package types

import (
	"encoding/json"
	"fmt"
)

// DetectVersion extracts x402Version from raw envelope bytes without
// committing to a full decode. Used for routing before schema validation.
func DetectVersion(data []byte) (int, error) {
	var detector struct {
		X402Version int `json:"x402Version"`
	}
	if err := json.Unmarshal(data, &detector); err != nil {
		return 0, fmt.Errorf("failed to detect version: %w", err)
	}
	if detector.X402Version < 1 {
		return 0, fmt.Errorf("invalid version: %d", detector.X402Version)
	}
	return detector.X402Version, nil
}

// ExtractSchemeNetwork pulls scheme and network from raw envelope or
// requirements bytes; both carry them at the top level.
func ExtractSchemeNetwork(data []byte) (scheme, network string, err error) {
	var partial struct {
		Scheme  string `json:"scheme"`
		Network string `json:"network"`
	}
	if err := json.Unmarshal(data, &partial); err != nil {
		return "", "", fmt.Errorf("failed to parse payload: %w", err)
	}
	return partial.Scheme, partial.Network, nil
}
