package domain

import "errors"

var (
	// Validation errors
	ErrAmountTooSmall = errors.New("amount below minimum allowed")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")

	// Input mapping errors
	ErrMalformedInput         = errors.New("malformed transaction input")
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")
	ErrUnknownHolderKind      = errors.New("unknown account holder kind")

	// Collaborator errors
	ErrRuleFetch = errors.New("failed to fetch fee rules")
)
