package budget

import (
	"encoding/json"
	"time"

	"github.com/etnz/budgetbot/date"
)

// Transaction is one expense recorded against a category. Immutable once
// appended to the ledger.
type Transaction struct {
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Cost      Money     `json:"cost"`
	Notes     string    `json:"notes,omitempty"`
}

// Transactions is the per-category ledger, in append order. Timestamps are
// not necessarily sorted since transactions can be backdated.
type Transactions []Transaction

// DecodeTransactions parses the stored JSON aggregate. A value that does not
// decode yields an empty ledger, not an error.
func DecodeTransactions(value string) Transactions {
	var ts Transactions
	if err := json.Unmarshal([]byte(value), &ts); err != nil {
		return Transactions{}
	}
	return ts
}

// Encode renders the ledger as its stored JSON form.
func (ts Transactions) Encode() (string, error) {
	b, err := json.Marshal(ts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SumSince totals the cost of every transaction on or after start.
func (ts Transactions) SumSince(start date.Date) Money {
	var sum Money
	from := start.Time()
	for _, tx := range ts {
		if !tx.Timestamp.Before(from) {
			sum = sum.Add(tx.Cost)
		}
	}
	return sum
}

// SumOn totals the cost of every transaction falling on day.
func (ts Transactions) SumOn(day date.Date) Money {
	var sum Money
	for _, tx := range ts {
		if date.Of(tx.Timestamp) == day {
			sum = sum.Add(tx.Cost)
		}
	}
	return sum
}
