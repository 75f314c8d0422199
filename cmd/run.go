package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/renderer"
	"github.com/google/subcommands"
)

type runCmd struct {
	details bool
	json    bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "evaluate every scenario of the book" }
func (*runCmd) Usage() string {
	return `mcs run [-details] [-json] [<name>...]

  Evaluates the scenarios of the book, or only the named ones, with the
  current assumptions. A failing scenario does not stop the others.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.details, "details", false, "Print the full report of each scenario")
	f.BoolVar(&c.json, "json", false, "Print the outcomes as JSON lines")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := mortgage.LoadBook(*bookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() > 0 {
		selected := mortgage.NewBook()
		for _, name := range f.Args() {
			found := book.Find(name)
			if len(found) == 0 {
				fmt.Fprintf(os.Stderr, "Error: no scenario %q in %s\n", name, *bookFile)
				return subcommands.ExitUsageError
			}
			selected.Append(found...)
		}
		book = selected
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	outcomes, evalErr := book.Evaluate(cfg.Assumptions)
	if outcomes == nil && evalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", evalErr)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(stdout)
		for _, o := range outcomes {
			if err := enc.Encode(o); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding outcome: %v\n", err)
				return subcommands.ExitFailure
			}
		}
	} else {
		printMarkdown(renderer.Outcomes(outcomes, c.details))
	}

	if evalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", evalErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
