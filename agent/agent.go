// Package agent implements an AI assistant able to run the mortgage calculators.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Print writes an answer, plain text if nil.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent, its facilitator dispatches the questions to the experts.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start creates the chats of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. The prompts are
// asked first, then the user is.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.send == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.w, "Welcome to the mcs mortgage assistant. Type 'bye' to exit.")

	next := a.questions(prompts)
	for {
		fmt.Fprint(a.w, prompt)
		question, err := next()
		if err == io.EOF || question == "bye" {
			return nil
		}
		if err != nil {
			return err
		}
		if question == "" {
			continue
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			return err
		}
		a.print(text(content))
	}
}

// questions returns a function that yields the prompts, echoed, then the
// lines read from the user, until io.EOF.
func (a *Agent) questions(prompts []string) func() (string, error) {
	return func() (string, error) {
		if len(prompts) > 0 {
			var q string
			q, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			fmt.Fprintln(a.w, q)
			return q, nil
		}
		line, err := a.r.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		return strings.TrimSpace(line), err
	}
}

func (a *Agent) print(md string) {
	if a.Print == nil {
		fmt.Fprintln(a.w, md)
		return
	}
	a.Print(a.w, md)
}

// text concatenates the text parts of a content.
func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
