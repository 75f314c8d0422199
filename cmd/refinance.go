package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type refinanceCmd struct {
	calcFlags
	s mortgage.Refinance
}

func (*refinanceCmd) Name() string     { return "refinance" }
func (*refinanceCmd) Synopsis() string { return "savings and break-even of a refinance" }
func (*refinanceCmd) Usage() string {
	return `mcs refinance -balance <amount> -rate <rate> -term <term> -new-rate <rate> [-new-term 30y] [-closing <amount>] [-save]

  Compares the remaining payments of the current loan with a new loan on the
  same balance, and computes when the savings repay the closing costs.
`
}

func (c *refinanceCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.CurrentTerm = mortgage.Years(30)
	c.s.NewTerm = mortgage.Years(30)
	f.Float64Var(&c.s.Balance, "balance", 0, "Remaining balance of the current loan")
	f.Var(&c.s.CurrentRate, "rate", "Annual interest rate of the current loan in percent")
	f.Var(&c.s.CurrentTerm, "term", "Remaining term of the current loan (e.g. 25y, 300m)")
	c.rateVar(f, &c.s.NewRate, &c.s.NewTerm, "new-rate", "Annual interest rate of the new loan in percent")
	f.Var(&c.s.NewTerm, "new-term", "Term of the new loan")
	f.Float64Var(&c.s.ClosingCosts, "closing", 0, "Closing costs of the new loan")
}

func (c *refinanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
