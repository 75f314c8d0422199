package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type mortgageCmd struct {
	calcFlags
	s mortgage.Mortgage
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "monthly payment and amortization of a loan" }
func (*mortgageCmd) Usage() string {
	return `mcs mortgage -principal <amount> -rate <rate> [-term 30y] [-on <date>] [-period yearly] [-save]

  Computes the level monthly payment of a fixed rate loan, its total interest,
  and its amortization schedule.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Principal, "principal", 0, "Loan amount")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Var(&c.s.FirstPayment, "on", "Due date of the first payment (YYYY-MM-DD)")
}

func (c *mortgageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
