package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage"
	"github.com/google/subcommands"
)

type extraCmd struct {
	calcFlags
	s mortgage.ExtraPayment
}

func (*extraCmd) Name() string     { return "extra" }
func (*extraCmd) Synopsis() string { return "interest and time saved by extra monthly payments" }
func (*extraCmd) Usage() string {
	return `mcs extra -principal <amount> -rate <rate> -extra <amount> [-term 30y] [-on <date>] [-save]

  Compares the loan repaid as scheduled with the loan repaid with an extra
  principal payment every month.
`
}

func (c *extraCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	c.s.Term = mortgage.Years(30)
	f.Float64Var(&c.s.Principal, "principal", 0, "Loan amount")
	c.rateVar(f, &c.s.Rate, &c.s.Term, "rate", "Annual interest rate in percent")
	f.Var(&c.s.Term, "term", "Loan term (e.g. 30y, 360m, 15y6m)")
	f.Float64Var(&c.s.Extra, "extra", 0, "Extra principal paid every month")
	f.Var(&c.s.FirstPayment, "on", "Due date of the first payment (YYYY-MM-DD)")
}

func (c *extraCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, f, func() mortgage.Scenario {
		c.s.Name, c.s.Memo = c.name, c.memo
		return c.s
	})
}
