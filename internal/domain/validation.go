package domain

import "fmt"

// Transaction amount bounds, inclusive on both ends.
const (
	MinTransactionAmount = 0.01
	MaxTransactionAmount = 1_000_000
)

// ValidateAmount checks a transaction amount against the allowed bounds.
// Both bounds are themselves valid amounts.
func ValidateAmount(amount float64) error {
	if amount < MinTransactionAmount {
		return fmt.Errorf("%w: minimum amount is %v", ErrAmountTooSmall, MinTransactionAmount)
	}

	if amount > MaxTransactionAmount {
		return fmt.Errorf("%w: maximum amount is %v", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}
