package ruleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/cashfee/internal/domain"
	"github.com/iho/cashfee/internal/usecase"
)

// Rule record names served by the pricing API.
const (
	recordCashIn           = "cash-in"
	recordCashOutNatural   = "cash-out-natural"
	recordCashOutJuridical = "cash-out-juridical"
)

// Client fetches the pricing rules over HTTP. It implements
// usecase.RuleProvider. Transient transport errors are retried with
// exponential backoff; a final failure surfaces as domain.ErrRuleFetch and
// aborts the batch. Fee computation itself never retries anything.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger

	cache    usecase.RuleCache
	cacheTTL time.Duration

	maxElapsedTime time.Duration
}

// NewClient creates a Client for the given rules API base URL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        baseURL,
		logger:         logger,
		maxElapsedTime: 15 * time.Second,
	}
}

// WithCache makes the client consult a cache before going to the network.
// Cache failures are treated as misses; writes are best effort.
func (c *Client) WithCache(cache usecase.RuleCache, ttl time.Duration) *Client {
	c.cache = cache
	c.cacheTTL = ttl
	return c
}

// Wire shapes of the three rule records.

type amountField struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type cashInRecord struct {
	Percents float64     `json:"percents"`
	Max      amountField `json:"max"`
}

type cashOutNaturalRecord struct {
	Percents  float64     `json:"percents"`
	WeekLimit amountField `json:"week_limit"`
}

type cashOutJuridicalRecord struct {
	Percents float64     `json:"percents"`
	Min      amountField `json:"min"`
}

// FetchRules retrieves and decodes all three rule records.
func (c *Client) FetchRules(ctx context.Context) (domain.Rules, error) {
	var (
		cashIn    cashInRecord
		natural   cashOutNaturalRecord
		juridical cashOutJuridicalRecord
	)

	if err := c.fetchRecord(ctx, recordCashIn, &cashIn); err != nil {
		return domain.Rules{}, err
	}

	if err := c.fetchRecord(ctx, recordCashOutNatural, &natural); err != nil {
		return domain.Rules{}, err
	}

	if err := c.fetchRecord(ctx, recordCashOutJuridical, &juridical); err != nil {
		return domain.Rules{}, err
	}

	return domain.Rules{
		Deposit: domain.DepositRule{
			Percent:   cashIn.Percents,
			CapAmount: cashIn.Max.Amount,
		},
		WithdrawalIndividual: domain.WithdrawalRuleIndividual{
			Percent:          natural.Percents,
			WeeklyFreeAmount: natural.WeekLimit.Amount,
		},
		WithdrawalOrganization: domain.WithdrawalRuleOrganization{
			Percent: juridical.Percents,
			MinFee:  juridical.Min.Amount,
		},
	}, nil
}

// fetchRecord loads one named record, from cache when possible, and decodes
// it into out.
func (c *Client) fetchRecord(ctx context.Context, name string, out any) error {
	if c.cache != nil {
		if data, err := c.cache.Get(ctx, name); err == nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err == nil {
				c.logger.Debug().Str("record", name).Msg("rule record served from cache")
				return nil
			}
			// Unparsable cache entry, fall through to the network.
		}
	}

	data, err := c.get(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRuleFetch, name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRuleFetch, name, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, name, data, c.cacheTTL); err != nil {
			c.logger.Warn().Err(err).Str("record", name).Msg("failed to cache rule record")
		}
	}

	return nil
}

// get performs the HTTP GET with backoff on transient transport errors.
// Non-2xx responses are permanent: retrying a well-formed rejection is
// pointless.
func (c *Client) get(ctx context.Context, name string) ([]byte, error) {
	url := c.baseURL + "/" + name

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = c.maxElapsedTime

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return body, nil
}
