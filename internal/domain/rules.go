package domain

// DepositRule prices cash-in operations: a percentage fee with an absolute cap.
type DepositRule struct {
	Percent   float64
	CapAmount float64
}

// WithdrawalRuleIndividual prices cash-out operations for natural persons:
// a percentage fee on the portion above the weekly free allowance.
type WithdrawalRuleIndividual struct {
	Percent          float64
	WeeklyFreeAmount float64
}

// WithdrawalRuleOrganization prices cash-out operations for juridical persons:
// a percentage fee with a configured minimum.
type WithdrawalRuleOrganization struct {
	Percent float64
	MinFee  float64
}

// Rules bundles the three pricing rules. They are fetched together, once,
// before any transaction is processed, and are immutable afterwards.
type Rules struct {
	Deposit                DepositRule
	WithdrawalIndividual   WithdrawalRuleIndividual
	WithdrawalOrganization WithdrawalRuleOrganization
}

// FeeResult is the outcome of pricing a single transaction.
type FeeResult struct {
	Fee   float64
	Total float64
}
