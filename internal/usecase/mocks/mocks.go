package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/cashfee/internal/domain"
)

// MockRuleProvider is a mock implementation of RuleProvider.
type MockRuleProvider struct {
	Rules      domain.Rules
	FetchCount int

	FetchRulesFunc func(ctx context.Context) (domain.Rules, error)
}

func NewMockRuleProvider() *MockRuleProvider {
	return &MockRuleProvider{}
}

func (m *MockRuleProvider) FetchRules(ctx context.Context) (domain.Rules, error) {
	m.FetchCount++
	if m.FetchRulesFunc != nil {
		return m.FetchRulesFunc(ctx)
	}
	return m.Rules, nil
}

// MockRuleCache is an in-memory mock implementation of RuleCache.
type MockRuleCache struct {
	mu      sync.Mutex
	entries map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func NewMockRuleCache() *MockRuleCache {
	return &MockRuleCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockRuleCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key], nil
}

func (m *MockRuleCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-run-id"
}
