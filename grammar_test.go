package budget

import (
	"context"
	"testing"
	"time"

	"github.com/etnz/budgetbot/date"
)

// match walks the default chain the way the dispatcher does and returns the
// first command produced.
func match(t *testing.T, l *Ledger, line string) Command {
	t.Helper()
	args := Tokenize(line)
	for _, g := range DefaultGrammars() {
		cmd, err := g.Match(context.Background(), l, args)
		if err != nil {
			t.Fatalf("grammar %s faulted: %v", g.Name, err)
		}
		if cmd != nil {
			return cmd
		}
	}
	return nil
}

func TestMatchAllocate(t *testing.T) {
	l := newTestLedger()

	cmd := match(t, l, "budget food 200 20/12")
	alloc, ok := cmd.(AllocateCommand)
	if !ok {
		t.Fatalf("got %T, want AllocateCommand", cmd)
	}
	if alloc.Category != "food" || !alloc.Limit.Equal(M(200, "GBP")) {
		t.Errorf("parsed %+v", alloc)
	}
	if alloc.Interval != date.OneMonth {
		t.Errorf("interval = %v, want the one month default", alloc.Interval)
	}
	if want := date.New(time.Now().Year(), time.December, 20); alloc.Start != want {
		t.Errorf("start = %v, want %v", alloc.Start, want)
	}

	cmd = match(t, l, "budget food 200 20/12 2q")
	alloc, ok = cmd.(AllocateCommand)
	if !ok {
		t.Fatalf("got %T, want AllocateCommand", cmd)
	}
	if want := (date.Interval{Unit: date.Quarterly, Span: 2}); alloc.Interval != want {
		t.Errorf("interval = %v, want %v", alloc.Interval, want)
	}
}

func TestMatchAllocate_BadInterval(t *testing.T) {
	l := newTestLedger()
	if cmd := match(t, l, "budget food 200 20/12 1w"); cmd != nil {
		t.Errorf("an unknown interval letter must not match, got %T", cmd)
	}
	if cmd := match(t, l, "budget food 200 20/12 xm"); cmd != nil {
		t.Errorf("an unparsable span must not match, got %T", cmd)
	}
}

func TestMatchAllocate_ArabicKeyword(t *testing.T) {
	l := newTestLedger()
	cmd := match(t, l, "بوجه food 200 20/12")
	if _, ok := cmd.(AllocateCommand); !ok {
		t.Errorf("got %T, want AllocateCommand", cmd)
	}
}

func TestMatchAddTransaction_Shapes(t *testing.T) {
	l := newTestLedger()
	tests := []struct {
		line      string
		wantNotes string
		wantDated bool
	}{
		{"food 1.99", "", false},
		{"food 1.99 greggs", "greggs", false},
		{"food 1.99 20/12", "", true},
		{"food 1.99 20/12 greggs sausage roll", "greggs sausage roll", true},
	}
	for _, tt := range tests {
		cmd := match(t, l, tt.line)
		add, ok := cmd.(AddTransactionCommand)
		if !ok {
			t.Fatalf("%q: got %T, want AddTransactionCommand", tt.line, cmd)
		}
		if add.Notes != tt.wantNotes {
			t.Errorf("%q: notes = %q, want %q", tt.line, add.Notes, tt.wantNotes)
		}
		if got := !add.Timestamp.IsZero(); got != tt.wantDated {
			t.Errorf("%q: dated = %v, want %v", tt.line, got, tt.wantDated)
		}
		if !add.Cost.Equal(M(1.99, "GBP")) {
			t.Errorf("%q: cost = %s", tt.line, add.Cost)
		}
	}
}

func TestGrammarPrecedence(t *testing.T) {
	l := newTestLedger()
	allocate(t, l, "food", 100, date.New(2024, time.January, 1))

	// "food list" fits no add-transaction shape, but even if it did, list is
	// registered first and must win.
	cmd := match(t, l, "food list")
	if _, ok := cmd.(ListCommand); !ok {
		t.Fatalf("got %T, want ListCommand", cmd)
	}

	cmd = match(t, l, "food list clear")
	if _, ok := cmd.(ClearCommand); !ok {
		t.Fatalf("got %T, want ClearCommand", cmd)
	}

	cmd = match(t, l, "food show")
	if _, ok := cmd.(VisualiseCommand); !ok {
		t.Fatalf("got %T, want VisualiseCommand", cmd)
	}

	cmd = match(t, l, "delete food")
	if _, ok := cmd.(DeleteCommand); !ok {
		t.Fatalf("got %T, want DeleteCommand", cmd)
	}
}

func TestMatchList_RequiresExistingCategory(t *testing.T) {
	l := newTestLedger()
	if cmd := match(t, l, "ghost list"); cmd != nil {
		t.Errorf("list matched a category that does not exist: %T", cmd)
	}
	if cmd := match(t, l, "ghost list clear"); cmd != nil {
		t.Errorf("clear matched a category that does not exist: %T", cmd)
	}
	if cmd := match(t, l, "delete ghost"); cmd != nil {
		t.Errorf("delete matched a category that does not exist: %T", cmd)
	}
	if cmd := match(t, l, "ghost show"); cmd != nil {
		t.Errorf("show matched a category that does not exist: %T", cmd)
	}
}

func TestMatchReport(t *testing.T) {
	l := newTestLedger()
	allocate(t, l, "rent", 1000, date.New(2024, time.January, 1))

	cmd := match(t, l, "budget")
	rep, ok := cmd.(ReportCommand)
	if !ok || rep.Category != "" {
		t.Errorf("bare keyword: got %T %+v, want an all-categories report", cmd, cmd)
	}

	cmd = match(t, l, "بوجه")
	if _, ok := cmd.(ReportCommand); !ok {
		t.Errorf("localized keyword: got %T, want ReportCommand", cmd)
	}

	cmd = match(t, l, "rent")
	rep, ok = cmd.(ReportCommand)
	if !ok || rep.Category != "rent" {
		t.Errorf("category name: got %T %+v", cmd, cmd)
	}

	if cmd := match(t, l, "asdf"); cmd != nil {
		t.Errorf("an unknown word must fall through the whole chain, got %T", cmd)
	}
}

func TestMatchHelp(t *testing.T) {
	l := newTestLedger()
	for _, line := range []string{"help", "?"} {
		if _, ok := match(t, l, line).(HelpCommand); !ok {
			t.Errorf("%q did not resolve to help", line)
		}
	}
}
