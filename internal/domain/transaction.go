package domain

import (
	"fmt"
	"time"
)

// TransactionKind distinguishes cash-in (deposit) from cash-out (withdrawal).
type TransactionKind string

const (
	KindDeposit    TransactionKind = "cash_in"
	KindWithdrawal TransactionKind = "cash_out"
)

// AccountHolderKind distinguishes natural persons from juridical ones.
type AccountHolderKind string

const (
	HolderIndividual   AccountHolderKind = "natural"
	HolderOrganization AccountHolderKind = "juridical"
)

// Transaction is a single cashing operation. It is immutable once constructed.
type Transaction struct {
	OccurredOn time.Time
	AccountID  string
	HolderKind AccountHolderKind
	Kind       TransactionKind
	Amount     float64
}

// ParseTransactionKind maps a wire value to a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case KindDeposit, KindWithdrawal:
		return TransactionKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionKind, s)
	}
}

// ParseAccountHolderKind maps a wire value to an AccountHolderKind.
func ParseAccountHolderKind(s string) (AccountHolderKind, error) {
	switch AccountHolderKind(s) {
	case HolderIndividual, HolderOrganization:
		return AccountHolderKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownHolderKind, s)
	}
}
