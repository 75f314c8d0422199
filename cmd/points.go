package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type pointsCmd struct {
	calcFlags
	s mortgage.Points
}

func (*pointsCmd) Name() string     { return "points" }
func (*pointsCmd) Synopsis() string { return "break-even of buying discount points" }
func (*pointsCmd) Usage() string {
	return `mcs points -principal <amount> -rate <rate> -points <n> [-term 30y] [-save]

  Each point costs 1% of the loan and lowers the rate by 0.25% by default.
  Compares the payments and the cumulative cost with and without points.
`
}

func (c *pointsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Principal, "principal", 0, "Loan amount")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate without points, in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Float64Var(&c.s.Points, "points", 0, "Number of discount points bought")
}

func (c *pointsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
