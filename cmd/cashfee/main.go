package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	redisRepo "github.com/iho/cashfee/internal/adapter/repository/redis"
	"github.com/iho/cashfee/internal/adapter/ruleclient"
	"github.com/iho/cashfee/internal/adapter/source"
	"github.com/iho/cashfee/internal/infrastructure/config"
	"github.com/iho/cashfee/internal/infrastructure/idgen"
	"github.com/iho/cashfee/internal/infrastructure/logger"
	"github.com/iho/cashfee/internal/infrastructure/redis"
	"github.com/iho/cashfee/internal/usecase"
)

var (
	rulesURL    string
	showSummary bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cashfee",
		Short: "Cashing-operation fee calculator",
		Long:  `Computes per-transaction fees for cash-in and cash-out operations.`,
	}

	processCmd := &cobra.Command{
		Use:   "process <batch.json>",
		Short: "Price a batch file and print one fee per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd.Context(), args[0])
		},
	}

	processCmd.Flags().StringVar(&rulesURL, "rules-url", "", "Override the rules API base URL")
	processCmd.Flags().BoolVar(&showSummary, "summary", false, "Log batch totals after processing")

	rootCmd.AddCommand(processCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runProcess(ctx context.Context, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if rulesURL != "" {
		cfg.RuleAPIBaseURL = rulesURL
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Parse the whole batch up front: malformed input aborts before any
	// transaction is priced.
	txs, err := source.Load(path)
	if err != nil {
		return err
	}

	client := ruleclient.NewClient(cfg.RuleAPIBaseURL, cfg.RuleFetchTimeout, appLogger)

	if cfg.CacheEnabled {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisClient.Close()

		client = client.WithCache(redisRepo.NewRuleCache(redisClient), cfg.RuleCacheTTL)
	}

	uc := usecase.NewBatchUseCase(client, idgen.NewULIDGenerator(), appLogger)

	if err := uc.Initialize(ctx); err != nil {
		return err
	}

	results, err := uc.Process(ctx, txs)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%.2f\n", r.Fee)
	}

	if showSummary {
		summary := uc.Summarize(results)
		appLogger.Info().
			Str("run_id", summary.RunID).
			Int("count", summary.Count).
			Str("total_fees", summary.TotalFees.StringFixed(2)).
			Str("total_net", summary.TotalNet.StringFixed(2)).
			Msg("batch summary")
	}

	return nil
}
