package budget

import (
	"context"
	"strings"

	"github.com/etnz/budgetbot/date"
)

// budgetKeywords are the accepted spellings of the budget keyword.
var budgetKeywords = []string{"budget", "بوجه"}

// Grammar matches a tokenized line against one command shape.
//
// Match returns (nil, nil) to decline, a Command on a match, and an error
// only for a real fault (a store read failing during an existence check).
// Declining is the normal outcome for a line meant for another grammar.
type Grammar struct {
	Name  string
	Match func(ctx context.Context, l *Ledger, args []Token) (Command, error)
}

// DefaultGrammars returns the grammar chain in registration order. Order is
// the only disambiguator: the first grammar to match wins.
func DefaultGrammars() []Grammar {
	return []Grammar{
		{Name: "list", Match: matchList},
		{Name: "clear", Match: matchClear},
		{Name: "allocate", Match: matchAllocate},
		{Name: "delete", Match: matchDelete},
		{Name: "add", Match: matchAddTransaction},
		{Name: "help", Match: matchHelp},
		{Name: "report", Match: matchReport},
		{Name: "visualise", Match: matchVisualise},
	}
}

// exists checks the category against the ledger. Grammars that require an
// existing category read the store at parse time.
func exists(ctx context.Context, l *Ledger, name string) (bool, error) {
	cat, err := l.Category(ctx, name)
	if err != nil {
		return false, err
	}
	return cat != nil, nil
}

// <category> list
func matchList(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) != 2 || !args[0].IsText() || !args[1].Is("list") {
		return nil, nil
	}
	ok, err := exists(ctx, l, args[0].Raw)
	if err != nil || !ok {
		return nil, err
	}
	return ListCommand{Category: args[0].Raw}, nil
}

// <category> list clear
func matchClear(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) != 3 || !args[0].IsText() || !args[1].Is("list") || !args[2].Is("clear") {
		return nil, nil
	}
	ok, err := exists(ctx, l, args[0].Raw)
	if err != nil || !ok {
		return nil, err
	}
	return ClearCommand{Category: args[0].Raw}, nil
}

// budget <category> <amount> <start> [<interval>]
func matchAllocate(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) < 4 || len(args) > 5 {
		return nil, nil
	}
	if !args[0].Is(budgetKeywords...) || !args[1].IsText() || !args[2].IsNumeric() || args[3].Kind != KindDate {
		return nil, nil
	}
	interval := date.OneMonth
	if len(args) == 5 {
		if !args[4].IsText() {
			return nil, nil
		}
		var err error
		if interval, err = date.ParseInterval(args[4].Raw); err != nil {
			return nil, nil
		}
	}
	return AllocateCommand{
		Category: args[1].Raw,
		Limit:    M(args[2].Number(), l.Currency()),
		Start:    args[3].Date(),
		Interval: interval,
	}, nil
}

// delete <category>
func matchDelete(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) != 2 || !args[0].Is("delete") {
		return nil, nil
	}
	ok, err := exists(ctx, l, args[1].Raw)
	if err != nil || !ok {
		return nil, err
	}
	return DeleteCommand{Category: args[1].Raw}, nil
}

// <category> <cost> [<date>] [<notes>...], four shapes accepted.
func matchAddTransaction(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) < 2 || !args[0].IsText() || !args[1].IsNumeric() {
		return nil, nil
	}
	cmd := AddTransactionCommand{
		Category: args[0].Raw,
		Cost:     M(args[1].Number(), l.Currency()),
	}
	rest := args[2:]
	if len(rest) > 0 && rest[0].Kind == KindDate {
		cmd.Timestamp = rest[0].Date().Time()
		rest = rest[1:]
	}
	if len(rest) > 0 {
		words := make([]string, len(rest))
		for i, tok := range rest {
			words[i] = tok.Raw
		}
		cmd.Notes = strings.Join(words, " ")
	}
	return cmd, nil
}

// help
func matchHelp(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) != 1 || !args[0].Is("help", "?") {
		return nil, nil
	}
	return HelpCommand{}, nil
}

// budget, or <category> alone
func matchReport(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) != 1 {
		return nil, nil
	}
	if args[0].Is(budgetKeywords...) {
		return ReportCommand{}, nil
	}
	if args[0].IsText() {
		// A lone word is only a report request when it names a category,
		// otherwise the line is not understood.
		ok, err := exists(ctx, l, args[0].Raw)
		if err != nil || !ok {
			return nil, err
		}
		return ReportCommand{Category: args[0].Raw}, nil
	}
	return nil, nil
}

// <category> show
func matchVisualise(ctx context.Context, l *Ledger, args []Token) (Command, error) {
	if len(args) != 2 || !args[0].IsText() || !args[1].Is("show") {
		return nil, nil
	}
	ok, err := exists(ctx, l, args[0].Raw)
	if err != nil || !ok {
		return nil, err
	}
	return VisualiseCommand{Category: args[0].Raw}, nil
}
