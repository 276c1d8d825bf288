package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/iho/cashfee/internal/adapter/http/dto"
	"github.com/iho/cashfee/internal/adapter/source"
	"github.com/iho/cashfee/internal/infrastructure/metrics"
	"github.com/iho/cashfee/internal/usecase"
)

// BatchHandler prices transaction batches over HTTP. Every request gets its
// own BatchUseCase and withdrawal history, so concurrent requests never share
// allowance state.
type BatchHandler struct {
	provider usecase.RuleProvider
	idGen    usecase.IDGenerator
	logger   zerolog.Logger
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(provider usecase.RuleProvider, idGen usecase.IDGenerator, logger zerolog.Logger) *BatchHandler {
	return &BatchHandler{
		provider: provider,
		idGen:    idGen,
		logger:   logger,
	}
}

// Create prices a batch. The request body is a JSON array in the same wire
// format as batch files.
func (h *BatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	txs, err := source.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	uc := usecase.NewBatchUseCase(h.provider, h.idGen, h.logger)

	if err := uc.Initialize(r.Context()); err != nil {
		writeError(w, mapDomainError(err), "failed to load fee rules", err.Error())
		return
	}

	results, err := uc.Process(r.Context(), txs)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to process batch", err.Error())
		return
	}

	metrics.ObserveBatch(txs, results)

	writeJSON(w, http.StatusOK, dto.BatchResponseFromDomain(uc.RunID(), results, uc.Summarize(results)))
}
