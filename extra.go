package mortgage

import (
	"github.com/etnz/mortgage/date"
)

// ExtraPayment are the inputs of the extra payment calculator: a loan repaid
// with an additional amount of principal every month.
type ExtraPayment struct {
	baseCalc
	Principal    float64   `json:"principal"`
	Rate         Percent   `json:"rate"`
	Term         Term      `json:"term"`
	Extra        float64   `json:"extra"`
	FirstPayment date.Date `json:"on,omitzero"`
}

func (ExtraPayment) What() CalcType                           { return CalcExtra }
func (s ExtraPayment) Label() string                          { return s.label(CalcExtra) }
func (s ExtraPayment) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s ExtraPayment) loan() Loan {
	return Loan{Principal: s.Principal, Rate: s.Rate, Term: s.Term, Extra: s.Extra, FirstPayment: s.FirstPayment}
}

func (s ExtraPayment) Validate() error { return s.loan().Validate() }

// ExtraPaymentResult compares the loan repaid with and without extra payments.
type ExtraPaymentResult struct {
	Scenario        ExtraPayment
	Payment         Money
	With, Without   *Schedule
	InterestWith    Money
	InterestWithout Money
	InterestSaved   Money
	MonthsSaved     int
}

func (*ExtraPaymentResult) What() CalcType { return CalcExtra }

// YearsWith is the number of (started) years to repay the loan with extra payments.
func (r *ExtraPaymentResult) YearsWith() int { return ceilDiv(r.With.Months(), 12) }

// YearsWithout is the number of (started) years to repay the loan as scheduled.
func (r *ExtraPaymentResult) YearsWithout() int { return ceilDiv(r.Without.Months(), 12) }

// Compute amortizes the loan twice.
func (s ExtraPayment) Compute(a Assumptions) (*ExtraPaymentResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	with, err := Amortize(s.loan())
	if err != nil {
		return nil, err
	}
	plain := s.loan()
	plain.Extra = 0
	without, err := Amortize(plain)
	if err != nil {
		return nil, err
	}
	return &ExtraPaymentResult{
		Scenario:        s,
		Payment:         M(with.Payment, a.Currency),
		With:            with,
		Without:         without,
		InterestWith:    M(with.TotalInterest(), a.Currency),
		InterestWithout: M(without.TotalInterest(), a.Currency),
		InterestSaved:   M(without.TotalInterest()-with.TotalInterest(), a.Currency),
		MonthsSaved:     without.Months() - with.Months(),
	}, nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
