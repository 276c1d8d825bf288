package dto

import (
	"fmt"

	"github.com/iho/cashfee/internal/domain"
	"github.com/iho/cashfee/internal/usecase"
)

// FeeLine is one priced transaction. Money is formatted with exactly two
// decimals; the fee is the required observable output, the total is included
// as a convenience.
type FeeLine struct {
	Fee   string `json:"fee"`
	Total string `json:"total"`
}

// BatchSummary aggregates a processed batch.
type BatchSummary struct {
	TotalFees string `json:"total_fees"`
	TotalNet  string `json:"total_net"`
	Count     int    `json:"count"`
}

// BatchResponse is the response to a batch pricing request.
type BatchResponse struct {
	RunID   string       `json:"run_id"`
	Results []FeeLine    `json:"results"`
	Summary BatchSummary `json:"summary"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// BatchResponseFromDomain converts processed results to a response.
func BatchResponseFromDomain(runID string, results []domain.FeeResult, summary usecase.BatchSummary) BatchResponse {
	lines := make([]FeeLine, len(results))
	for i, r := range results {
		lines[i] = FeeLine{
			Fee:   fmt.Sprintf("%.2f", r.Fee),
			Total: fmt.Sprintf("%.2f", r.Total),
		}
	}

	return BatchResponse{
		RunID:   runID,
		Results: lines,
		Summary: BatchSummary{
			TotalFees: summary.TotalFees.StringFixed(2),
			TotalNet:  summary.TotalNet.StringFixed(2),
			Count:     summary.Count,
		},
	}
}
