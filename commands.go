package budget

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/etnz/budgetbot/date"
	"github.com/etnz/budgetbot/docs"
	"github.com/etnz/budgetbot/renderer"
)

// Command is a fully parsed user intent. Execute runs it synchronously
// against the ledger and returns its output messages. now is the execution
// timestamp, injected so behavior is reproducible in tests.
//
// A user-level rejection (unknown category, empty ledger) is a returned
// message, not an error. An error means the command could not run at all,
// a store fault mostly.
type Command interface {
	Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error)
}

// AllocateCommand creates or replaces a category's budget.
type AllocateCommand struct {
	Category string
	Limit    Money
	Start    date.Date
	Interval date.Interval
}

func (c AllocateCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	period := date.Period{Start: c.Start, Interval: c.Interval}
	if err := l.Allocate(ctx, c.Category, c.Limit, period); err != nil {
		return nil, err
	}
	return []Message{Textf("Category %q added.", c.Category)}, nil
}

// DeleteCommand removes a category. Silent when there is nothing to remove.
type DeleteCommand struct {
	Category string
}

func (c DeleteCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	removed, err := l.Remove(ctx, c.Category)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, nil
	}
	return []Message{Textf("Removed budget")}, nil
}

// ClearCommand empties a category's transaction ledger. It emits no
// confirmation.
type ClearCommand struct {
	Category string
}

func (c ClearCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	if err := l.Clear(ctx, c.Category); err != nil {
		return nil, err
	}
	return nil, nil
}

// ListCommand prints a category's transactions, most recent first.
type ListCommand struct {
	Category string
}

func (c ListCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	ts, err := l.Transactions(ctx, c.Category)
	if err != nil {
		return nil, err
	}
	if len(ts) == 0 {
		return []Message{Textf("No transactions recorded.")}, nil
	}
	sorted := make(Transactions, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	var b strings.Builder
	for _, tx := range sorted {
		fmt.Fprintf(&b, "%s  %-8s", tx.Timestamp.Format("02/01/06 15:04"), tx.Cost)
		if tx.Notes != "" {
			fmt.Fprintf(&b, "  %s", tx.Notes)
		}
		b.WriteByte('\n')
	}
	return []Message{Textf("%s", strings.TrimRight(b.String(), "\n"))}, nil
}

// ReportCommand prints balance lines, for one category or for all of them.
type ReportCommand struct {
	Category string // empty means every category
}

func (c ReportCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	list, err := l.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if len(list.Categories) == 0 {
		return []Message{Textf("No budgets defined.")}, nil
	}

	if c.Category != "" {
		cat := list.Find(c.Category)
		if cat == nil {
			return []Message{Textf("Category %q not found.", c.Category)}, nil
		}
		msg, err := c.reportLine(ctx, l, cat, now)
		if err != nil {
			return nil, err
		}
		return []Message{msg}, nil
	}

	var messages []Message
	for i := range list.Categories {
		msg, err := c.reportLine(ctx, l, &list.Categories[i], now)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (c ReportCommand) reportLine(ctx context.Context, l *Ledger, cat *Category, now time.Time) (Message, error) {
	if cat.Limit.IsZero() {
		return Message{}, fmt.Errorf("category %q has a zero limit, spending percentage is undefined", cat.Name)
	}
	balance, err := l.Balance(ctx, cat)
	if err != nil {
		return Message{}, err
	}
	spent := cat.Limit.Sub(balance)
	remaining := cat.Period.RemainingDays(date.Of(now))
	return Textf("%-16s\n%s / %s (%s) %4d days",
		cat.Name, balance, cat.Limit, spent.PercentOf(cat.Limit), remaining), nil
}

// AddTransactionCommand records one expense and reports the new balance.
type AddTransactionCommand struct {
	Category  string
	Cost      Money
	Timestamp time.Time // zero means "now"
	Notes     string
}

func (c AddTransactionCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	list, err := l.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if len(list.Categories) == 0 {
		return []Message{Textf("No budgets allocated.")}, nil
	}
	cat := list.Find(c.Category)
	if cat == nil {
		return []Message{Textf("No category %q defined.", c.Category)}, nil
	}

	when := c.Timestamp
	if when.IsZero() {
		when = now
	}
	tx := Transaction{Timestamp: when, Category: cat.Name, Cost: c.Cost, Notes: c.Notes}
	if err := l.Add(ctx, tx); err != nil {
		return nil, err
	}
	balance, err := l.Balance(ctx, cat)
	if err != nil {
		return nil, err
	}
	return []Message{Textf("Balance: %s", balance)}, nil
}

// VisualiseCommand renders a category's day-by-day balance as a PNG chart
// and emits it as an image payload.
type VisualiseCommand struct {
	Category string
}

func (c VisualiseCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	cat, err := l.Category(ctx, c.Category)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return []Message{Textf("No category %q defined.", c.Category)}, nil
	}
	ts, err := l.Transactions(ctx, cat.Name)
	if err != nil {
		return nil, err
	}
	days, balances := BalanceSeries(cat, ts)
	path, err := renderer.WriteTempChart(cat.Name, days, balances)
	if err != nil {
		return nil, fmt.Errorf("cannot render chart for %q: %w", cat.Name, err)
	}
	return []Message{ImageMessage(path)}, nil
}

// HelpCommand prints the embedded command reference.
type HelpCommand struct{}

func (c HelpCommand) Execute(ctx context.Context, l *Ledger, now time.Time) ([]Message, error) {
	doc, err := docs.Topic("commands")
	if err != nil {
		return nil, fmt.Errorf("cannot load command reference: %w", err)
	}
	return []Message{Textf("%s", doc)}, nil
}
