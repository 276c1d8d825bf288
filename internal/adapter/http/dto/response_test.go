package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iho/cashfee/internal/adapter/http/dto"
	"github.com/iho/cashfee/internal/domain"
	"github.com/iho/cashfee/internal/usecase"
)

func TestBatchResponseFromDomain(t *testing.T) {
	results := []domain.FeeResult{
		{Fee: 0.03, Total: 99.97},
		{Fee: 5, Total: 49995},
		{Fee: 0, Total: 300},
	}

	summary := usecase.BatchSummary{
		RunID:     "run-1",
		Count:     3,
		TotalFees: decimal.RequireFromString("5.03"),
		TotalNet:  decimal.RequireFromString("50394.97"),
	}

	resp := dto.BatchResponseFromDomain("run-1", results, summary)

	assert.Equal(t, "run-1", resp.RunID)

	// Money is always rendered with exactly two decimals.
	assert.Equal(t, []dto.FeeLine{
		{Fee: "0.03", Total: "99.97"},
		{Fee: "5.00", Total: "49995.00"},
		{Fee: "0.00", Total: "300.00"},
	}, resp.Results)

	assert.Equal(t, dto.BatchSummary{
		TotalFees: "5.03",
		TotalNet:  "50394.97",
		Count:     3,
	}, resp.Summary)
}
