package agent

import (
	"context"
	"strings"
	"time"

	"github.com/etnz/budgetbot"
	"github.com/etnz/budgetbot/docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAssistant builds the budgeting expert. It turns natural language into
// bot command lines and runs them through dispatcher, so the model never
// touches the store directly.
func NewAssistant(dispatcher *budget.Dispatcher) *Expert {
	lib := []Function{runCommand(dispatcher)}
	return &Expert{
		Name:        "Assistant",
		Description: "Manages the user's budgets: allocations, expenses, reports.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal budgeting assistant. The user tells you about
			budgets and expenses in natural language; you act by running bot
			command lines through the run_command tool and report its answer
			back in a friendly way. Amounts without a category need a
			clarifying question, never a guess.

			The command line reference:

			` + must(docs.Topic("commands"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// runCommand exposes the dispatcher as a model tool.
func runCommand(dispatcher *budget.Dispatcher) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "run_command",
			Description: `Runs one budget bot command line, like "budget food 200 20/12 1m" or
			"food 1.99 greggs", and returns the bot's reply.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"line": {
						Type:        genai.TypeString,
						Description: "The command line to run.",
					},
				},
				Required: []string{"line"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The bot's reply, one line per message.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "run_command"}
			line, ok := args["line"].(string)
			if !ok {
				fresp.Response = map[string]any{"error": "argument 'line' must be a string"}
				return fresp
			}
			messages, err := dispatcher.Process(ctx, line, time.Now())
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			var b strings.Builder
			for _, m := range messages {
				b.WriteString(m.String())
				b.WriteString("\n")
			}
			fresp.Response = map[string]any{"output": b.String()}
			return fresp
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
