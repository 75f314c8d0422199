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
	"go.uber.org/zap"
)

// calculators returns a new instance of every calculator command.
func calculators() []subcommands.Command {
	return []subcommands.Command{
		&mortgageCmd{},
		&aprCmd{},
		&extraCmd{},
		&refinanceCmd{},
		&principalCmd{},
		&interestOnlyCmd{},
		&affordCmd{},
		&incomeCmd{},
		&pointsCmd{},
		&taxCmd{},
	}
}

// calcFlags are the flags shared by every calculator command.
type calcFlags struct {
	name   string
	memo   string
	save   bool
	period string
	rates  []*rateFlag
}

func (c *calcFlags) setFlags(f *flag.FlagSet) {
	c.rates = nil
	f.StringVar(&c.name, "name", "", "Name of the scenario in the book")
	f.StringVar(&c.memo, "memo", "", "Free comment on the scenario")
	f.BoolVar(&c.save, "save", false, "Append the scenario to the book")
	f.StringVar(&c.period, "period", "yearly", "Period of the schedule: monthly, quarterly or yearly")
}

// rateVar defines a rate flag that also accepts "market": the latest average
// rate published for a loan of the given term.
func (c *calcFlags) rateVar(f *flag.FlagSet, rate *mortgage.Percent, term *mortgage.Term, name, usage string) {
	r := &rateFlag{rate: rate, term: term}
	c.rates = append(c.rates, r)
	f.Var(r, name, usage+` (e.g. "6.5" or "market")`)
}

// run evaluates the scenario built from the flags and prints its report.
func (c *calcFlags) run(ctx context.Context, f *flag.FlagSet, scenario func() mortgage.Scenario) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, r := range c.rates {
		if err := r.resolve(ctx, rateFeed(cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching the market rate: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s := scenario()
	if err := mortgage.Validate(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	result, err := s.Evaluate(cfg.Assumptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	Logger().Debug("evaluated", zap.String("calc", string(s.What())), zap.String("label", s.Label()))

	printMarkdown(renderer.MarkdownBy(result, period))

	if c.save {
		if err := mortgage.AppendScenario(*bookFile, s); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving scenario: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Scenario %q appended to %s\n", s.Label(), *bookFile)
	}
	return subcommands.ExitSuccess
}

// rateFlag is a flag.Value for a rate, or "market".
type rateFlag struct {
	rate   *mortgage.Percent
	term   *mortgage.Term
	market bool
}

func (r *rateFlag) String() string {
	switch {
	case r.market:
		return "market"
	case r.rate == nil:
		return ""
	default:
		return r.rate.String()
	}
}

func (r *rateFlag) Set(s string) error {
	if s == "market" {
		r.market = true
		return nil
	}
	r.market = false
	return r.rate.Set(s)
}

// resolve fetches the market rate if it was requested.
func (r *rateFlag) resolve(ctx context.Context, feed *mortgage.RateFeed) error {
	if !r.market {
		return nil
	}
	m, err := feed.Latest(ctx, mortgage.SeriesFor(*r.term))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Using the %s average rate of %s: %s\n", m.Series, m.On, m.Rate)
	*r.rate = m.Rate
	return nil
}
