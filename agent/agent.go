package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive chat session.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	// Print writes an answer, plain text when nil.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent reading user input from r and writing to w.
func New(w io.Writer, r io.Reader, expert *Expert) *Agent {
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: expert,
	}
}

const prompt = "assist> "

// Run starts the interactive session. Prompts are sent first, as if typed by
// the user. It ends on "bye" or at the end of input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if !a.Expert.Started() {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to rnt assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.print(content)
	}
}

func (a *Agent) print(content *genai.Content) {
	var sb strings.Builder
	for _, p := range content.Parts {
		sb.WriteString(p.Text)
	}
	if a.Print != nil {
		a.Print(a.w, sb.String())
		return
	}
	fmt.Fprintln(a.w, sb.String())
}
