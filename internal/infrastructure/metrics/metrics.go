package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/cashfee/internal/domain"
)

var (
	batchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cashfee_batches_processed_total",
		Help: "Total number of transaction batches processed",
	})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cashfee_batch_size",
		Help:    "Number of transactions per batch",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	})

	transactionsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cashfee_transactions_processed_total",
			Help: "Total number of transactions priced",
		},
		[]string{"kind", "holder"},
	)

	feeAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cashfee_fee_amount",
		Help:    "Rounded fee amounts charged",
		Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 100, 1000},
	})
)

// ObserveBatch records metrics for one processed batch.
func ObserveBatch(txs []domain.Transaction, results []domain.FeeResult) {
	batchesProcessed.Inc()
	batchSize.Observe(float64(len(txs)))

	for _, tx := range txs {
		transactionsProcessed.WithLabelValues(string(tx.Kind), string(tx.HolderKind)).Inc()
	}

	for _, r := range results {
		feeAmount.Observe(r.Fee)
	}
}
