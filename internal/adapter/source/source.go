// Package source decodes batches of wire-format transactions.
//
// The wire format is a JSON array of objects:
//
//	{"user_id": 1, "user_type": "natural", "type": "cash_out",
//	 "operation": {"amount": 300}, "date": "2016-01-05"}
//
// Any decoding or mapping failure is fatal before processing starts and
// wraps domain.ErrMalformedInput.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iho/cashfee/internal/domain"
)

// accountID accepts both JSON numbers and strings; upstream feeds are not
// consistent about the user_id type.
type accountID string

func (a *accountID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = accountID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = accountID(n.String())

	return nil
}

type wireOperation struct {
	Amount float64 `json:"amount"`
}

type wireTransaction struct {
	UserID    accountID     `json:"user_id"`
	UserType  string        `json:"user_type"`
	Type      string        `json:"type"`
	Operation wireOperation `json:"operation"`
	Date      string        `json:"date"`
}

// Load reads and decodes a batch file.
func Load(path string) ([]domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes a JSON array of wire transactions into domain transactions,
// preserving input order.
func Decode(r io.Reader) ([]domain.Transaction, error) {
	var wire []wireTransaction
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	txs := make([]domain.Transaction, 0, len(wire))

	for i, w := range wire {
		tx, err := mapTransaction(w)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %d: %v", domain.ErrMalformedInput, i, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func mapTransaction(w wireTransaction) (domain.Transaction, error) {
	kind, err := domain.ParseTransactionKind(w.Type)
	if err != nil {
		return domain.Transaction{}, err
	}

	holder, err := domain.ParseAccountHolderKind(w.UserType)
	if err != nil {
		return domain.Transaction{}, err
	}

	occurredOn, err := parseDate(w.Date)
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		AccountID:  string(w.UserID),
		HolderKind: holder,
		Kind:       kind,
		Amount:     w.Operation.Amount,
		OccurredOn: occurredOn,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	return t, nil
}
