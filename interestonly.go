package mortgage

import (
	"github.com/etnz/mortgage/date"
)

// InterestOnly are the inputs of the interest-only calculator: a loan whose
// first months only pay interest, then amortizes over the rest of the term.
type InterestOnly struct {
	baseCalc
	Principal    float64   `json:"principal"`
	Rate         Percent   `json:"rate"`
	Term         Term      `json:"term"`
	Period       Term      `json:"interestOnly"` // length of the interest-only period
	FirstPayment date.Date `json:"on,omitzero"`
}

func (InterestOnly) What() CalcType                           { return CalcInterestOnly }
func (s InterestOnly) Label() string                          { return s.label(CalcInterestOnly) }
func (s InterestOnly) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s InterestOnly) loan() Loan {
	return Loan{Principal: s.Principal, Rate: s.Rate, Term: s.Term, InterestOnly: s.Period, FirstPayment: s.FirstPayment}
}

func (s InterestOnly) Validate() error { return s.loan().Validate() }

// InterestOnlyResult holds both payments and the amortization.
type InterestOnlyResult struct {
	Scenario            InterestOnly
	InterestOnlyPayment Money
	AmortizingPayment   Money // payment once the interest-only period is over
	PaymentIncrease     Money
	TotalInterest       Money
	Schedule            *Schedule
}

func (*InterestOnlyResult) What() CalcType { return CalcInterestOnly }

// Compute amortizes the loan month by month.
func (s InterestOnly) Compute(a Assumptions) (*InterestOnlyResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	sch, err := Amortize(s.loan())
	if err != nil {
		return nil, err
	}
	return &InterestOnlyResult{
		Scenario:            s,
		InterestOnlyPayment: M(sch.InterestOnlyPayment, a.Currency),
		AmortizingPayment:   M(sch.Payment, a.Currency),
		PaymentIncrease:     M(sch.Payment-sch.InterestOnlyPayment, a.Currency),
		TotalInterest:       M(sch.TotalInterest(), a.Currency),
		Schedule:            sch,
	}, nil
}
