package usecase

import (
	"context"
	"time"

	"github.com/iho/cashfee/internal/domain"
)

// RuleProvider supplies the pricing rules. The three rule records are fetched
// together in a single call; any failure is fatal for the batch.
type RuleProvider interface {
	FetchRules(ctx context.Context) (domain.Rules, error)
}

// RuleCache caches raw rule records between runs.
type RuleCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
