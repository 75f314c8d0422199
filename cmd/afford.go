package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type affordCmd struct {
	calcFlags
	s mortgage.Affordability
}

func (*affordCmd) Name() string     { return "afford" }
func (*affordCmd) Synopsis() string { return "most expensive home an income can buy" }
func (*affordCmd) Usage() string {
	return `mcs afford -income <amount> -rate <rate> [-debts <amount>] [-down <amount>] [-term 30y] [-tax <amount>] [-insurance <amount>] [-save]

  Applies the front-end and back-end debt-to-income ratios (28% and 36% by
  default) to find the largest payment, loan and home price.
`
}

func (c *affordCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.AnnualIncome, "income", 0, "Gross annual income")
	f.Float64Var(&c.s.MonthlyDebts, "debts", 0, "Other monthly debt payments")
	f.Float64Var(&c.s.DownPayment, "down", 0, "Down payment")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Float64Var(&c.s.PropertyTax, "tax", 0, "Annual property tax")
	f.Float64Var(&c.s.Insurance, "insurance", 0, "Annual home insurance")
}

func (c *affordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
