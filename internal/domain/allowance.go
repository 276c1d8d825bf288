package domain

// Chargeable describes how much of a candidate withdrawal falls outside the
// remaining weekly free allowance.
type Chargeable struct {
	Exceeded bool
	Amount   float64
}

// WithdrawalHistory tracks successfully processed individual withdrawals for
// the lifetime of a batch run. It is append-only and never pruned; callers
// own one history per independent run so batches do not contaminate each
// other.
//
// The history must only ever receive withdrawal transactions from individual
// holders that passed validation and fee computation. That invariant is
// enforced by the caller, not here.
type WithdrawalHistory struct {
	entries []Transaction
}

// NewWithdrawalHistory creates an empty history.
func NewWithdrawalHistory() *WithdrawalHistory {
	return &WithdrawalHistory{}
}

// Record appends a processed withdrawal. Entries are never mutated or
// removed afterwards.
func (h *WithdrawalHistory) Record(tx Transaction) {
	h.entries = append(h.entries, tx)
}

// Len returns the number of recorded withdrawals.
func (h *WithdrawalHistory) Len() int {
	return len(h.entries)
}

// WeeklyChargeable computes the portion of the candidate's amount that
// exceeds the remaining weekly free allowance for its account.
//
// Prior withdrawals are selected by comparing each entry's day-of-year
// against the candidate's Monday..Sunday day-of-year window. Entries from a
// different calendar year are still compared against the candidate's window
// as-is; day-of-year is not globally ordered across years, so histories
// spanning a year boundary can select entries from the matching window of
// another year. Known limitation, kept for parity with the billing rules.
func (h *WithdrawalHistory) WeeklyChargeable(accountID string, candidate Transaction, weeklyFreeAmount float64) Chargeable {
	weekStart := MondayDayOfYear(candidate.OccurredOn)
	weekEnd := SundayDayOfYear(candidate.OccurredOn)

	var priorWeeklyTotal float64

	for _, entry := range h.entries {
		if entry.AccountID != accountID {
			continue
		}

		day := DayOfYear(entry.OccurredOn)
		if weekStart <= day && day <= weekEnd {
			priorWeeklyTotal += entry.Amount
		}
	}

	// Allowance already exhausted: the whole candidate amount is charged.
	if priorWeeklyTotal >= weeklyFreeAmount {
		return Chargeable{Exceeded: true, Amount: candidate.Amount}
	}

	// The candidate straddles the boundary: charge only the excess.
	if priorWeeklyTotal+candidate.Amount > weeklyFreeAmount {
		return Chargeable{Exceeded: true, Amount: candidate.Amount + priorWeeklyTotal - weeklyFreeAmount}
	}

	return Chargeable{Exceeded: false, Amount: candidate.Amount}
}
