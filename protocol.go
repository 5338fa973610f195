package nova402

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// CreateNonce generates a random 32-byte nonce as a 0x-prefixed hex string.
func CreateNonce() (string, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return "0x" + hex.EncodeToString(nonce), nil
}

// CreateValidityWindow returns validAfter/validBefore timestamps for a payment
// valid for the given duration starting now. validAfter is backdated by
// DefaultValidityBuffer to absorb clock skew between payer and facilitator.
func CreateValidityWindow(duration time.Duration) (validAfter, validBefore int64) {
	now := time.Now().Unix()
	validAfter = now - DefaultValidityBuffer
	validBefore = now + int64(duration.Seconds())
	return validAfter, validBefore
}
