package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/date"
	"github.com/etnz/mortgage/renderer"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	period string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "amortization schedule of a scenario of the book" }
func (*scheduleCmd) Usage() string {
	return `mcs schedule [-period monthly] <name>

  Prints the full amortization schedule of the scenario named <name> in the
  book, summarized by month, quarter or year.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "monthly", "Period of the schedule: monthly, quarterly or yearly")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a single scenario name is required")
		return subcommands.ExitUsageError
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := mortgage.LoadBook(*bookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	found := book.Find(f.Arg(0))
	switch len(found) {
	case 0:
		fmt.Fprintf(os.Stderr, "Error: no scenario %q in %s\n", f.Arg(0), *bookFile)
		return subcommands.ExitUsageError
	case 1:
	default:
		fmt.Fprintf(os.Stderr, "Error: %d scenarios are named %q in %s\n", len(found), f.Arg(0), *bookFile)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	result, err := found[0].Evaluate(cfg.Assumptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ScheduleMarkdown(result, period))
	return subcommands.ExitSuccess
}
