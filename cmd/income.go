package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	calcFlags
	s mortgage.IncomeQualifier
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "income required to buy a home" }
func (*incomeCmd) Usage() string {
	return `mcs income -price <amount> -rate <rate> [-down <amount>] [-term 30y] [-tax <amount>] [-insurance <amount>] [-hoa <amount>] [-debts <amount>] [-save]

  Adds up the monthly housing costs and computes the yearly income needed to
  keep them under the debt-to-income ratios.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Price, "price", 0, "Home price")
	f.Float64Var(&c.s.DownPayment, "down", 0, "Down payment")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Float64Var(&c.s.PropertyTax, "tax", 0, "Annual property tax")
	f.Float64Var(&c.s.Insurance, "insurance", 0, "Annual home insurance")
	f.Float64Var(&c.s.HOA, "hoa", 0, "Annual HOA dues")
	f.Float64Var(&c.s.MonthlyDebts, "debts", 0, "Other monthly debt payments")
}

func (c *incomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
