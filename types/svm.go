package types

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

// SVMTransferAuthorization is the Solana-family equivalent of an EIP-3009
// authorization. Its canonical byte form is Borsh, so leaves committed to a
// Merkle batch hash identically across implementations.
type SVMTransferAuthorization struct {
	Source      solana.PublicKey `json:"source"`
	Destination solana.PublicKey `json:"destination"`
	Amount      uint64           `json:"amount"` // lamports or token base units
	ValidAfter  int64            `json:"validAfter"`
	ValidBefore int64            `json:"validBefore"`
	Nonce       [32]byte         `json:"nonce"`
}

// CanonicalBytes returns the Borsh serialization of the authorization.
// Field order follows the struct declaration and is part of the wire
// contract.
func (a SVMTransferAuthorization) CanonicalBytes() ([]byte, error) {
	data, err := bin.MarshalBorsh(a)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize authorization: %w", err)
	}
	return data, nil
}

// SVMAuthorizationFromBase58 builds an authorization from base58-encoded
// source and destination addresses.
func SVMAuthorizationFromBase58(source, destination string, amount uint64, validAfter, validBefore int64, nonce [32]byte) (SVMTransferAuthorization, error) {
	src, err := solana.PublicKeyFromBase58(source)
	if err != nil {
		return SVMTransferAuthorization{}, fmt.Errorf("invalid source address: %w", err)
	}
	dst, err := solana.PublicKeyFromBase58(destination)
	if err != nil {
		return SVMTransferAuthorization{}, fmt.Errorf("invalid destination address: %w", err)
	}
	return SVMTransferAuthorization{
		Source:      src,
		Destination: dst,
		Amount:      amount,
		ValidAfter:  validAfter,
		ValidBefore: validBefore,
		Nonce:       nonce,
	}, nil
}
