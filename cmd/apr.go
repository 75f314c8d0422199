package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type aprCmd struct {
	calcFlags
	s mortgage.LoanCost
}

func (*aprCmd) Name() string     { return "apr" }
func (*aprCmd) Synopsis() string { return "annual percentage rate of a loan with fees" }
func (*aprCmd) Usage() string {
	return `mcs apr -principal <amount> -rate <rate> [-term 30y] [-origination <amount>] [-fees <amount>] [-save]

  Computes the APR: the rate at which the loan payments repay exactly the
  amount financed, that is the loan amount less the upfront fees.
`
}

func (c *aprCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Principal, "principal", 0, "Loan amount")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Float64Var(&c.s.OriginationFee, "origination", 0, "Origination fee")
	f.Float64Var(&c.s.OtherFees, "fees", 0, "Other closing fees included in the finance charge")
}

func (c *aprCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
