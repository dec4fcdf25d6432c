package kvstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, err := s.Get(ctx, "budgets"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store = %v, want ErrNotFound", err)
	}
	if err := s.Set(ctx, "budgets", `{"categories":[]}`); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "budgets")
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"categories":[]}` {
		t.Errorf("Get = %q", got)
	}
}

func TestFile(t *testing.T) {
	ctx := context.Background()
	s, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Get(ctx, "budget-food"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store = %v, want ErrNotFound", err)
	}
	if err := s.Set(ctx, "budget-food", `[]`); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "budget-food")
	if err != nil {
		t.Fatal(err)
	}
	if got != `[]` {
		t.Errorf("Get = %q", got)
	}

	// overwrite
	if err := s.Set(ctx, "budget-food", `[{"cost":{"amount":1.99,"currency":"GBP"}}]`); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get(ctx, "budget-food")
	if got == `[]` {
		t.Error("Set did not overwrite")
	}
}

func TestFile_KeyCannotEscapeRoot(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(context.Background(), "../escape", "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(context.Background(), "../escape"); err != nil {
		t.Errorf("Get after Set = %v", err)
	}
}
