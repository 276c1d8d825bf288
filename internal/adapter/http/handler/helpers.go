package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/cashfee/internal/adapter/http/dto"
	"github.com/iho/cashfee/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownTransactionKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownHolderKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooSmall):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRuleFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
