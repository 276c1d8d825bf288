package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/cashfee/internal/adapter/http"
	"github.com/iho/cashfee/internal/adapter/http/handler"
	"github.com/iho/cashfee/internal/usecase/mocks"
)

func newTestRouter() http.Handler {
	return httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BatchHandler:  handler.NewBatchHandler(mocks.NewMockRuleProvider(), mocks.NewMockIDGenerator(), zerolog.Nop()),
		HealthHandler: handler.NewHealthHandler(nil),
		Logger:        zerolog.Nop(),
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /api/v1/nope = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
