package mortgage

import (
	"github.com/etnz/mortgage/date"
)

// Principal are the inputs of the principal calculator: how much can be
// borrowed for a given monthly payment.
type Principal struct {
	baseCalc
	Payment      float64   `json:"payment"`
	Rate         Percent   `json:"rate"`
	Term         Term      `json:"term"`
	FirstPayment date.Date `json:"on,omitzero"`
}

func (Principal) What() CalcType                           { return CalcPrincipal }
func (s Principal) Label() string                          { return s.label(CalcPrincipal) }
func (s Principal) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s Principal) Validate() error {
	var c checks
	c.positive("monthly payment", s.Payment)
	c.rate("interest rate", s.Rate)
	c.term("loan term", s.Term)
	return c.err()
}

// PrincipalResult is the loan a payment can afford and its amortization.
type PrincipalResult struct {
	Scenario      Principal
	Principal     Money
	TotalInterest Money
	Schedule      *Schedule
}

func (*PrincipalResult) What() CalcType { return CalcPrincipal }

// Compute discounts the payments, then amortizes the resulting loan.
func (s Principal) Compute(a Assumptions) (*PrincipalResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	principal := presentValue(s.Payment, s.Rate.Monthly(), s.Term.Payments())
	sch, err := Amortize(Loan{Principal: principal, Rate: s.Rate, Term: s.Term, FirstPayment: s.FirstPayment})
	if err != nil {
		return nil, err
	}
	return &PrincipalResult{
		Scenario:      s,
		Principal:     M(principal, a.Currency),
		TotalInterest: M(sch.TotalInterest(), a.Currency),
		Schedule:      sch,
	}, nil
}
