package domain_test

import (
	"testing"
	"time"

	"github.com/iho/cashfee/internal/domain"
)

func withdrawal(accountID string, amount float64, on time.Time) domain.Transaction {
	return domain.Transaction{
		AccountID:  accountID,
		HolderKind: domain.HolderIndividual,
		Kind:       domain.KindWithdrawal,
		Amount:     amount,
		OccurredOn: on,
	}
}

func TestWeeklyChargeable(t *testing.T) {
	tuesday := date(2016, time.January, 5)
	friday := date(2016, time.January, 8)
	nextWeek := date(2016, time.January, 12)

	const freeAmount = 1000.0

	tests := []struct {
		name      string
		prior     []domain.Transaction
		candidate domain.Transaction
		want      domain.Chargeable
	}{
		{
			name:      "no history",
			candidate: withdrawal("1", 100, tuesday),
			want:      domain.Chargeable{Exceeded: false, Amount: 100},
		},
		{
			name: "prior withdrawals leave room",
			prior: []domain.Transaction{
				withdrawal("1", 100, tuesday),
				withdrawal("1", 105, tuesday),
				withdrawal("1", 20, tuesday),
			},
			candidate: withdrawal("1", 100, friday),
			want:      domain.Chargeable{Exceeded: false, Amount: 100},
		},
		{
			name: "exactly reaching the limit stays free",
			prior: []domain.Transaction{
				withdrawal("1", 900, tuesday),
			},
			candidate: withdrawal("1", 100, friday),
			want:      domain.Chargeable{Exceeded: false, Amount: 100},
		},
		{
			name: "straddling the limit charges only the excess",
			prior: []domain.Transaction{
				withdrawal("1", 500, tuesday),
				withdrawal("1", 400, tuesday),
			},
			candidate: withdrawal("1", 200, friday),
			want:      domain.Chargeable{Exceeded: true, Amount: 100},
		},
		{
			name: "exhausted allowance charges the whole amount",
			prior: []domain.Transaction{
				withdrawal("1", 500, tuesday),
				withdrawal("1", 600, tuesday),
			},
			candidate: withdrawal("1", 100, friday),
			want:      domain.Chargeable{Exceeded: true, Amount: 100},
		},
		{
			name: "other accounts do not consume the allowance",
			prior: []domain.Transaction{
				withdrawal("2", 2000, tuesday),
			},
			candidate: withdrawal("1", 100, friday),
			want:      domain.Chargeable{Exceeded: false, Amount: 100},
		},
		{
			name: "withdrawals outside the candidate's week are ignored",
			prior: []domain.Transaction{
				withdrawal("1", 1000, tuesday),
			},
			candidate: withdrawal("1", 100, nextWeek),
			want:      domain.Chargeable{Exceeded: false, Amount: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := domain.NewWithdrawalHistory()
			for _, tx := range tt.prior {
				history.Record(tx)
			}

			got := history.WeeklyChargeable(tt.candidate.AccountID, tt.candidate, freeAmount)

			if got != tt.want {
				t.Fatalf("WeeklyChargeable = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithdrawalHistoryAppendOnly(t *testing.T) {
	history := domain.NewWithdrawalHistory()

	if history.Len() != 0 {
		t.Fatalf("new history should be empty, got %d entries", history.Len())
	}

	tuesday := date(2016, time.January, 5)
	history.Record(withdrawal("1", 100, tuesday))
	history.Record(withdrawal("1", 200, tuesday))

	if history.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", history.Len())
	}
}
