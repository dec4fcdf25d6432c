package budget

import (
	"context"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// Dispatcher turns raw text lines into executed commands. It owns the
// grammar chain, built once at construction and never mutated afterward.
type Dispatcher struct {
	ledger   *Ledger
	grammars []Grammar
}

// NewDispatcher builds a dispatcher over ledger. A nil grammars slice means
// DefaultGrammars.
func NewDispatcher(ledger *Ledger, grammars []Grammar) *Dispatcher {
	if grammars == nil {
		grammars = DefaultGrammars()
	}
	return &Dispatcher{ledger: ledger, grammars: grammars}
}

// Process interprets one command line and returns the messages it produced.
// An empty line is a no-op. A line no grammar understands yields a
// "Command not found." message, with a suggestion when a close match exists.
// An error means the pipeline itself failed, a store fault during matching
// or execution.
func (d *Dispatcher) Process(ctx context.Context, line string, now time.Time) ([]Message, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	args := Tokenize(strings.ToLower(line))

	for _, g := range d.grammars {
		cmd, err := g.Match(ctx, d.ledger, args)
		if err != nil {
			return nil, err
		}
		if cmd == nil {
			continue
		}
		return cmd.Execute(ctx, d.ledger, now)
	}

	messages := []Message{Textf("Command not found.")}
	if hint, ok := d.suggest(ctx, args[0].Raw); ok {
		messages = append(messages, Textf("Did you mean %q?", hint))
	}
	return messages, nil
}

// suggest looks for the known word closest to the first word of a rejected
// line: a command keyword or a category name at most two edits away.
func (d *Dispatcher) suggest(ctx context.Context, word string) (string, bool) {
	candidates := []string{"budget", "delete", "help"}
	if list, err := d.ledger.Categories(ctx); err == nil {
		for _, c := range list.Categories {
			candidates = append(candidates, strings.ToLower(c.Name))
		}
	}

	best, bestDist := "", 3
	for _, c := range candidates {
		if dist := levenshtein.ComputeDistance(word, c); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if bestDist == 0 {
		// the first word is already a known word, the mistake is elsewhere
		return "", false
	}
	return best, best != ""
}
