package nova402

import "fmt"

// ErrorKind identifies the failure class of a CryptoError. Kinds are a closed
// set so callers can branch on them instead of parsing messages.
type ErrorKind string

const (
	// Merkle engine
	ErrEmptyTree       ErrorKind = "empty_tree"
	ErrIndexOutOfRange ErrorKind = "index_out_of_range"

	// Signature subsystem
	ErrInvalidPrivateKey  ErrorKind = "invalid_private_key"
	ErrMalformedSignature ErrorKind = "malformed_signature"
	ErrRecoveryFailed     ErrorKind = "recovery_failed"

	// Payload codec
	ErrInvalidBase64    ErrorKind = "invalid_base64"
	ErrMalformedPayload ErrorKind = "malformed_payload"
	ErrMissingField     ErrorKind = "missing_field"

	// Validation engine
	ErrUnsupportedScheme  ErrorKind = "unsupported_scheme"
	ErrUnsupportedNetwork ErrorKind = "unsupported_network"
	ErrInvalidChainID     ErrorKind = "invalid_chain_id"
	ErrInvalidAddress     ErrorKind = "invalid_address"
	ErrInvalidAmount      ErrorKind = "invalid_amount"
	ErrPaymentExpired     ErrorKind = "payment_expired"
	ErrPaymentNotYetValid ErrorKind = "payment_not_yet_valid"
	ErrDeadlineTooFar     ErrorKind = "deadline_too_far"

	// Hashing engine
	ErrUnknownAlgorithm ErrorKind = "unknown_algorithm"
)

// CryptoError is the single error taxonomy for the core. Every fallible
// operation returns one, with structured fields filled in where they apply
// (Index/Bound for range errors, Field for codec errors).
type CryptoError struct {
	Kind  ErrorKind
	Field string // offending field or input name, when known
	Index int    // offending index for range errors
	Bound int    // exclusive upper bound for range errors
	Err   error  // wrapped cause, when any
}

func (e *CryptoError) Error() string {
	switch e.Kind {
	case ErrIndexOutOfRange:
		return fmt.Sprintf("%s: index %d out of bounds for %d leaves", e.Kind, e.Index, e.Bound)
	}
	msg := string(e.Kind)
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// Is reports kind equality so errors.Is works against sentinel kinds.
func (e *CryptoError) Is(target error) bool {
	t, ok := target.(*CryptoError)
	return ok && t.Kind == e.Kind
}

// NewError creates a CryptoError of the given kind with an optional cause.
func NewError(kind ErrorKind, err error) *CryptoError {
	return &CryptoError{Kind: kind, Err: err}
}

// NewFieldError creates a CryptoError attributed to a named field or input.
func NewFieldError(kind ErrorKind, field string) *CryptoError {
	return &CryptoError{Kind: kind, Field: field}
}

// NewIndexError creates an out-of-range CryptoError carrying the offending
// index and the exclusive bound it violated.
func NewIndexError(index, bound int) *CryptoError {
	return &CryptoError{Kind: ErrIndexOutOfRange, Index: index, Bound: bound}
}

// IsKind reports whether err is a CryptoError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ce, ok := err.(*CryptoError)
	return ok && ce.Kind == kind
}
