package mortgage

import (
	"github.com/etnz/mortgage/date"
)

// Mortgage are the inputs of the plain mortgage calculator.
type Mortgage struct {
	baseCalc
	Principal    float64   `json:"principal"`
	Rate         Percent   `json:"rate"`
	Term         Term      `json:"term"`
	FirstPayment date.Date `json:"on,omitzero"`
}

func (Mortgage) What() CalcType                           { return CalcMortgage }
func (s Mortgage) Label() string                          { return s.label(CalcMortgage) }
func (s Mortgage) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s Mortgage) loan() Loan {
	return Loan{Principal: s.Principal, Rate: s.Rate, Term: s.Term, FirstPayment: s.FirstPayment}
}

func (s Mortgage) Validate() error { return s.loan().Validate() }

// MortgageResult is the monthly payment of a loan and its amortization.
type MortgageResult struct {
	Scenario      Mortgage
	Payment       Money
	TotalPaid     Money
	TotalInterest Money
	Schedule      *Schedule
}

func (*MortgageResult) What() CalcType { return CalcMortgage }

// Compute amortizes the loan.
func (s Mortgage) Compute(a Assumptions) (*MortgageResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	sch, err := Amortize(s.loan())
	if err != nil {
		return nil, err
	}
	return &MortgageResult{
		Scenario:      s,
		Payment:       M(sch.Payment, a.Currency),
		TotalPaid:     M(sch.TotalPaid(), a.Currency),
		TotalInterest: M(sch.TotalInterest(), a.Currency),
		Schedule:      sch,
	}, nil
}
