package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type principalCmd struct {
	calcFlags
	s mortgage.Principal
}

func (*principalCmd) Name() string     { return "principal" }
func (*principalCmd) Synopsis() string { return "loan amount a monthly payment can repay" }
func (*principalCmd) Usage() string {
	return `mcs principal -payment <amount> -rate <rate> [-term 30y] [-on <date>] [-save]

  Computes the largest loan that a monthly payment repays over the term.
`
}

func (c *principalCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Payment, "payment", 0, "Monthly payment, principal and interest")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Var(&c.s.FirstPayment, "on", "Due date of the first payment (YYYY-MM-DD)")
}

func (c *principalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
