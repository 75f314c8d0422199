package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type taxCmd struct {
	calcFlags
	s mortgage.TaxBenefit
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "first year tax savings of the mortgage interest deduction" }
func (*taxCmd) Usage() string {
	return `mcs tax -price <amount> -rate <rate> [-down <amount>] [-term 30y] [-tax <amount>] [-save]

  Estimates the deductions of the first year (mortgage interest and property
  tax) and their value at the tax bracket (22% by default).
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Price, "price", 0, "Home price")
	f.Float64Var(&c.s.DownPayment, "down", 0, "Down payment")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Float64Var(&c.s.PropertyTax, "tax", 0, "Annual property tax")
}

func (c *taxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
