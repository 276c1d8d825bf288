package redis

import (
	"context"
	"testing"
	"time"
)

func TestRuleCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewRuleCache(client)
	ctx := context.Background()

	record := []byte(`{"percents":0.03,"max":{"amount":5,"currency":"EUR"}}`)

	if err := cache.Set(ctx, "cash-in", record, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "cash-in")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(got) != string(record) {
		t.Fatalf("expected %s, got %s", record, got)
	}
}

func TestRuleCacheGetMissingKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewRuleCache(client)

	got, err := cache.Get(context.Background(), "cash-out-natural")
	if err != nil {
		t.Fatalf("expected a miss without error, got %v", err)
	}

	if got != nil {
		t.Fatalf("expected nil bytes on a miss, got %q", got)
	}
}

func TestRuleCacheKeysArePrefixed(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewRuleCache(client)

	if err := cache.Set(context.Background(), "cash-in", []byte("{}"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !mr.Exists("rules:cash-in") {
		t.Fatalf("expected key rules:cash-in to exist")
	}
}

func TestRuleCacheRespectsTTL(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewRuleCache(client)

	if err := cache.Set(context.Background(), "cash-in", []byte("{}"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(context.Background(), "cash-in")
	if err != nil {
		t.Fatalf("get after expiry failed: %v", err)
	}

	if got != nil {
		t.Fatalf("expected expired entry to be a miss, got %q", got)
	}
}
