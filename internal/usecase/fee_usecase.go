package usecase

import (
	"github.com/iho/cashfee/internal/domain"
)

// Raw organization fees under the configured minimum collapse to this flat
// charge; the configured minimum itself is never billed.
// TODO: confirm with billing whether the flat charge should be rule.MinFee.
const organizationFloorFee = 0.5

// FeeUseCase prices individual transactions against an immutable rules bundle
// and a per-run withdrawal history.
type FeeUseCase struct {
	rules   domain.Rules
	history *domain.WithdrawalHistory
}

// NewFeeUseCase creates a FeeUseCase. The history must be dedicated to this
// run; sharing one across runs leaks allowance state between batches.
func NewFeeUseCase(rules domain.Rules, history *domain.WithdrawalHistory) *FeeUseCase {
	return &FeeUseCase{
		rules:   rules,
		history: history,
	}
}

// ComputeDepositFee prices a deposit: a percentage of the amount, capped.
// The result is unrounded; rounding happens in ProcessTransaction.
func (uc *FeeUseCase) ComputeDepositFee(amount float64) domain.FeeResult {
	fee := amount * (uc.rules.Deposit.Percent / 100)
	if fee > uc.rules.Deposit.CapAmount {
		fee = uc.rules.Deposit.CapAmount
	}

	return domain.FeeResult{Fee: fee, Total: amount - fee}
}

// ComputeWithdrawalFeeOrganization prices a juridical withdrawal: a
// percentage of the amount with a floor. Unrounded.
func (uc *FeeUseCase) ComputeWithdrawalFeeOrganization(amount float64) domain.FeeResult {
	fee := amount * (uc.rules.WithdrawalOrganization.Percent / 100)
	if fee < uc.rules.WithdrawalOrganization.MinFee {
		fee = organizationFloorFee
	}

	return domain.FeeResult{Fee: fee, Total: amount - fee}
}

// ComputeWithdrawalFeeIndividual prices a natural-person withdrawal against
// the remaining weekly free allowance. Unrounded. The candidate itself is not
// recorded here; recording happens in ProcessTransaction after success.
func (uc *FeeUseCase) ComputeWithdrawalFeeIndividual(tx domain.Transaction) domain.FeeResult {
	rule := uc.rules.WithdrawalIndividual
	chargeable := uc.history.WeeklyChargeable(tx.AccountID, tx, rule.WeeklyFreeAmount)

	if !chargeable.Exceeded {
		return domain.FeeResult{Fee: 0, Total: tx.Amount}
	}

	fee := chargeable.Amount * (rule.Percent / 100)

	return domain.FeeResult{Fee: fee, Total: tx.Amount - fee}
}

// ProcessTransaction validates, dispatches by kind and holder, and returns
// the fee and total rounded up to the cent. Individual withdrawals are
// recorded into the history only after the computation succeeds; a rejected
// transaction never consumes allowance.
func (uc *FeeUseCase) ProcessTransaction(tx domain.Transaction) (domain.FeeResult, error) {
	if err := domain.ValidateAmount(tx.Amount); err != nil {
		return domain.FeeResult{}, err
	}

	var result domain.FeeResult

	switch tx.Kind {
	case domain.KindDeposit:
		result = uc.ComputeDepositFee(tx.Amount)

	case domain.KindWithdrawal:
		switch tx.HolderKind {
		case domain.HolderIndividual:
			result = uc.ComputeWithdrawalFeeIndividual(tx)
			uc.history.Record(tx)
		case domain.HolderOrganization:
			result = uc.ComputeWithdrawalFeeOrganization(tx.Amount)
		default:
			return domain.FeeResult{}, domain.ErrUnknownHolderKind
		}

	default:
		return domain.FeeResult{}, domain.ErrUnknownTransactionKind
	}

	return domain.FeeResult{
		Fee:   domain.RoundCurrency(result.Fee),
		Total: domain.RoundCurrency(result.Total),
	}, nil
}
