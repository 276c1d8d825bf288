package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// RuleRecords holds the raw JSON documents a fake pricing API serves for the
// three rule records.
type RuleRecords struct {
	CashIn           string
	CashOutNatural   string
	CashOutJuridical string
}

// DefaultRuleRecords returns the record set used by the production pricing
// API examples.
func DefaultRuleRecords() RuleRecords {
	return RuleRecords{
		CashIn:           `{"percents":0.03,"max":{"amount":5,"currency":"EUR"}}`,
		CashOutNatural:   `{"percents":0.3,"week_limit":{"amount":1000,"currency":"EUR"}}`,
		CashOutJuridical: `{"percents":0.3,"min":{"amount":0.5,"currency":"EUR"}}`,
	}
}

// RulesServer is a fake pricing API. Requests counts each record fetch so
// tests can assert whether the network was hit.
type RulesServer struct {
	*httptest.Server

	requests atomic.Int64
}

// NewRulesServer starts a fake pricing API serving the given records. The
// server is closed when the test finishes.
func NewRulesServer(t *testing.T, records RuleRecords) *RulesServer {
	t.Helper()

	s := &RulesServer{}

	byPath := map[string]string{
		"/cash-in":            records.CashIn,
		"/cash-out-natural":   records.CashOutNatural,
		"/cash-out-juridical": records.CashOutJuridical,
	}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, ok := byPath[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		s.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(record)); err != nil {
			t.Errorf("failed to write rule record: %v", err)
		}
	}))
	t.Cleanup(s.Server.Close)

	return s
}

// Requests returns how many record fetches reached the server.
func (s *RulesServer) Requests() int64 {
	return s.requests.Load()
}
