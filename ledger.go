package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/budgetbot/date"
	"github.com/etnz/budgetbot/kvstore"
)

// categoriesKey is the fixed store key holding the category list aggregate.
const categoriesKey = "budgets"

// transactionsKey derives the store key holding one category's ledger.
func transactionsKey(category string) string {
	return "budget-" + strings.ToLower(category)
}

// Ledger is the accessor every command executes against. It loads and saves
// the two JSON aggregates from a key-value store and computes balances on
// demand, never persisting a running total.
//
// A missing key and an undecodable value both read as an empty aggregate;
// any other store failure is returned as an error.
type Ledger struct {
	store    kvstore.Store
	currency string
}

// NewLedger returns a ledger over store. Amounts parsed from command lines
// are denominated in currency, DefaultCurrency if empty.
func NewLedger(store kvstore.Store, currency string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Ledger{store: store, currency: currency}
}

// Currency returns the ledger's denomination.
func (l *Ledger) Currency() string { return l.currency }

// Categories loads the category list aggregate.
func (l *Ledger) Categories(ctx context.Context) (CategoryList, error) {
	value, err := l.store.Get(ctx, categoriesKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return CategoryList{}, nil
	}
	if err != nil {
		return CategoryList{}, fmt.Errorf("cannot load categories: %w", err)
	}
	return DecodeCategories(value), nil
}

// PutCategories saves the category list aggregate.
func (l *Ledger) PutCategories(ctx context.Context, list CategoryList) error {
	value, err := list.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode categories: %w", err)
	}
	if err := l.store.Set(ctx, categoriesKey, value); err != nil {
		return fmt.Errorf("cannot save categories: %w", err)
	}
	return nil
}

// Category finds one category by name, case-insensitively. Returns nil when
// there is none.
func (l *Ledger) Category(ctx context.Context, name string) (*Category, error) {
	list, err := l.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return list.Find(name), nil
}

// Transactions loads one category's ledger.
func (l *Ledger) Transactions(ctx context.Context, category string) (Transactions, error) {
	value, err := l.store.Get(ctx, transactionsKey(category))
	if errors.Is(err, kvstore.ErrNotFound) {
		return Transactions{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load transactions for %q: %w", category, err)
	}
	return DecodeTransactions(value), nil
}

// PutTransactions saves one category's ledger.
func (l *Ledger) PutTransactions(ctx context.Context, category string, ts Transactions) error {
	value, err := ts.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode transactions for %q: %w", category, err)
	}
	if err := l.store.Set(ctx, transactionsKey(category), value); err != nil {
		return fmt.Errorf("cannot save transactions for %q: %w", category, err)
	}
	return nil
}

// Allocate upserts a category: created on first allocation, limit and period
// replaced on subsequent ones.
func (l *Ledger) Allocate(ctx context.Context, name string, limit Money, period date.Period) error {
	list, err := l.Categories(ctx)
	if err != nil {
		return err
	}
	list.Upsert(Category{Name: name, Limit: limit, Period: period})
	return l.PutCategories(ctx, list)
}

// Remove deletes a category by name and reports whether one was removed. The
// category's transaction ledger is left behind in the store.
func (l *Ledger) Remove(ctx context.Context, name string) (bool, error) {
	list, err := l.Categories(ctx)
	if err != nil {
		return false, err
	}
	if !list.Remove(name) {
		return false, nil
	}
	if err := l.PutCategories(ctx, list); err != nil {
		return false, err
	}
	return true, nil
}

// Clear overwrites a category's ledger with an empty one.
func (l *Ledger) Clear(ctx context.Context, category string) error {
	return l.PutTransactions(ctx, category, Transactions{})
}

// Add appends one transaction to its category's ledger.
func (l *Ledger) Add(ctx context.Context, tx Transaction) error {
	ts, err := l.Transactions(ctx, tx.Category)
	if err != nil {
		return err
	}
	ts = append(ts, tx)
	return l.PutTransactions(ctx, tx.Category, ts)
}

// Balance computes a category's remaining budget: limit minus the cost of
// every transaction dated on or after the period start.
func (l *Ledger) Balance(ctx context.Context, c *Category) (Money, error) {
	ts, err := l.Transactions(ctx, c.Name)
	if err != nil {
		return Money{}, err
	}
	return c.Limit.Sub(ts.SumSince(c.Period.Start)), nil
}
