package budget

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func process(t *testing.T, d *Dispatcher, line string) []Message {
	t.Helper()
	msgs, err := d.Process(context.Background(), line, time.Now())
	if err != nil {
		t.Fatalf("Process(%q): %v", line, err)
	}
	return msgs
}

func TestDispatcher_EndToEnd(t *testing.T) {
	l := newTestLedger()
	d := NewDispatcher(l, nil)

	msgs := process(t, d, "budget rent 1000 01/01 1m")
	if len(msgs) != 1 || msgs[0].Text != `Category "rent" added.` {
		t.Fatalf("allocate: got %v", msgs)
	}

	msgs = process(t, d, "rent 250 jan rent")
	if len(msgs) != 1 || msgs[0].Text != "Balance: £750.00" {
		t.Fatalf("add: got %v", msgs)
	}

	msgs = process(t, d, "rent list")
	if len(msgs) != 1 || !strings.Contains(msgs[0].Text, "£250.00") || !strings.Contains(msgs[0].Text, "jan rent") {
		t.Fatalf("list: got %v", msgs)
	}

	msgs = process(t, d, "rent list clear")
	if len(msgs) != 0 {
		t.Fatalf("clear: got %v, want silence", msgs)
	}
	msgs = process(t, d, "rent list")
	if len(msgs) != 1 || msgs[0].Text != "No transactions recorded." {
		t.Fatalf("list after clear: got %v", msgs)
	}

	msgs = process(t, d, "budget")
	if len(msgs) != 1 || !strings.Contains(msgs[0].Text, "rent") || !strings.Contains(msgs[0].Text, "days") {
		t.Fatalf("report: got %v", msgs)
	}

	msgs = process(t, d, "asdf")
	if len(msgs) == 0 || msgs[0].Text != "Command not found." {
		t.Fatalf("unknown line: got %v", msgs)
	}
}

func TestDispatcher_EmptyLine(t *testing.T) {
	d := NewDispatcher(newTestLedger(), nil)
	for _, line := range []string{"", "   ", "\t\n"} {
		if msgs := process(t, d, line); len(msgs) != 0 {
			t.Errorf("Process(%q): got %v, want nothing", line, msgs)
		}
	}
}

func TestDispatcher_CaseInsensitive(t *testing.T) {
	d := NewDispatcher(newTestLedger(), nil)
	msgs := process(t, d, "BUDGET Food 100 01/01")
	if len(msgs) != 1 || msgs[0].Text != `Category "food" added.` {
		t.Fatalf("got %v", msgs)
	}
}

func TestDispatcher_Suggestion(t *testing.T) {
	d := NewDispatcher(newTestLedger(), nil)
	process(t, d, "budget food 100 01/01")

	msgs := process(t, d, "fod bar")
	if len(msgs) != 2 {
		t.Fatalf("got %v, want not-found plus a suggestion", msgs)
	}
	if msgs[0].Text != "Command not found." {
		t.Errorf("first message = %q", msgs[0].Text)
	}
	if msgs[1].Text != `Did you mean "food"?` {
		t.Errorf("suggestion = %q", msgs[1].Text)
	}
}

func TestDispatcher_NoSuggestionOnExactFirstWord(t *testing.T) {
	d := NewDispatcher(newTestLedger(), nil)
	process(t, d, "budget food 100 01/01")

	msgs := process(t, d, "food lst")
	if len(msgs) != 1 {
		t.Fatalf("got %v, want only the not-found message", msgs)
	}
	if msgs[0].Text != "Command not found." {
		t.Errorf("got %q", msgs[0].Text)
	}
}

func TestDispatcher_StoreFaultAborts(t *testing.T) {
	ctx := context.Background()
	fault := errors.New("connection refused")
	d := NewDispatcher(NewLedger(failingStore{err: fault}, "GBP"), nil)

	// the existence check of the list grammar hits the store
	msgs, err := d.Process(ctx, "food list", time.Now())
	if !errors.Is(err, fault) {
		t.Fatalf("matching error = %v, want the store fault", err)
	}
	if len(msgs) != 0 {
		t.Errorf("got %v, want no messages on a fault", msgs)
	}

	// the allocate grammar matches without the store, the fault hits at execution
	msgs, err = d.Process(ctx, "budget food 100 01/01", time.Now())
	if !errors.Is(err, fault) {
		t.Fatalf("execution error = %v, want the store fault", err)
	}
	if len(msgs) != 0 {
		t.Errorf("got %v, want no messages on a fault", msgs)
	}
}
