package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/mortgage/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	market bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI mortgage assistant" }
func (*assistCmd) Usage() string {
	return `mcs assist [-market] [<question>]

  Starts an interactive session with an assistant that runs the calculators
  to answer. Requires a Gemini API key in GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.market, "market", false, "Let the assistant read the market rates (requires a FRED API key)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	feed := rateFeed(cfg)
	if !c.market {
		feed = nil
	}
	advisor := agent.NewAdvisor(cfg.Assumptions, feed, Logger())
	a := agent.New(stdout, os.Stdin, advisor, agent.NewResearcher())
	a.Print = func(w io.Writer, md string) { printMarkdown(md) }

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
