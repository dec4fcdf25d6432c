// Package agent wires a conversational AI assistant over the budget bot.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent handles an interactive assist session with one expert.
type Agent struct {
	w         io.Writer
	r         *bufio.Reader
	Assistant *Expert
}

// New creates an Agent writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, assistant *Expert) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Assistant: assistant}
}

const prompt = "assist> "

// Run starts the interactive session. Lines given in prompts are played
// first, then input is read from the reader until EOF or 'bye'.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Assistant.chat == nil {
		if err := a.Assistant.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to budgetbot assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Assistant.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
