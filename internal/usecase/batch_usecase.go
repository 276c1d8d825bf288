package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/cashfee/internal/domain"
)

// ErrNotInitialized is returned when Process is called before Initialize.
var ErrNotInitialized = errors.New("batch processor not initialized")

// BatchUseCase runs a sequence of transactions through the fee engine.
// Each BatchUseCase owns its withdrawal history, so independent runs never
// see each other's allowance state. It is not safe for concurrent use.
type BatchUseCase struct {
	provider RuleProvider
	idGen    IDGenerator
	logger   zerolog.Logger

	fee   *FeeUseCase
	runID string
}

// NewBatchUseCase creates a BatchUseCase.
func NewBatchUseCase(provider RuleProvider, idGen IDGenerator, logger zerolog.Logger) *BatchUseCase {
	return &BatchUseCase{
		provider: provider,
		idGen:    idGen,
		logger:   logger,
	}
}

// Initialize fetches the rules bundle and prepares a fresh fee engine. It
// must be called exactly once before Process; the rules are fetched in a
// single call and never again.
func (uc *BatchUseCase) Initialize(ctx context.Context) error {
	rules, err := uc.provider.FetchRules(ctx)
	if err != nil {
		return err
	}

	uc.runID = uc.idGen.Generate()
	uc.fee = NewFeeUseCase(rules, domain.NewWithdrawalHistory())

	uc.logger.Debug().Str("run_id", uc.runID).Msg("batch processor initialized")

	return nil
}

// RunID returns the identifier assigned to this run during Initialize.
func (uc *BatchUseCase) RunID() string {
	return uc.runID
}

// Process prices every transaction in input order. Order matters: the
// withdrawal history accumulates as the batch advances, so reordering input
// changes individual-withdrawal fees. The first failing transaction aborts
// the batch with no partial results.
func (uc *BatchUseCase) Process(ctx context.Context, txs []domain.Transaction) ([]domain.FeeResult, error) {
	if uc.fee == nil {
		return nil, ErrNotInitialized
	}

	results := make([]domain.FeeResult, 0, len(txs))

	for i, tx := range txs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := uc.fee.ProcessTransaction(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d (account %s): %w", i, tx.AccountID, err)
		}

		results = append(results, result)
	}

	uc.logger.Info().
		Str("run_id", uc.runID).
		Int("transactions", len(txs)).
		Msg("batch processed")

	return results, nil
}

// BatchSummary aggregates the rounded results of a run. Totals are exact:
// every input is already rounded to the cent.
type BatchSummary struct {
	TotalFees decimal.Decimal
	TotalNet  decimal.Decimal
	RunID     string
	Count     int
}

// Summarize totals the fees and net amounts of a processed batch.
func (uc *BatchUseCase) Summarize(results []domain.FeeResult) BatchSummary {
	summary := BatchSummary{
		RunID: uc.runID,
		Count: len(results),
	}

	for _, r := range results {
		summary.TotalFees = summary.TotalFees.Add(decimal.NewFromFloat(r.Fee))
		summary.TotalNet = summary.TotalNet.Add(decimal.NewFromFloat(r.Total))
	}

	return summary
}
