package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type interestOnlyCmd struct {
	calcFlags
	s mortgage.InterestOnly
}

func (*interestOnlyCmd) Name() string { return "interest-only" }
func (*interestOnlyCmd) Synopsis() string {
	return "payments of a loan starting with interest-only months"
}
func (*interestOnlyCmd) Usage() string {
	return `mcs interest-only -principal <amount> -rate <rate> -io <term> [-term 30y] [-on <date>] [-save]

  Computes the interest-only payment, then the payment amortizing the loan
  over the rest of the term.
`
}

func (c *interestOnlyCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Principal, "principal", 0, "Loan amount")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term, the interest-only period included")
	f.Var(&c.s.Period, "io", "Length of the interest-only period (e.g. 5y, 18m)")
	f.Var(&c.s.FirstPayment, "on", "Due date of the first payment (YYYY-MM-DD)")
}

func (c *interestOnlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
