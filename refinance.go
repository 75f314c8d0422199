package mortgage

import "math"

// Refinance are the inputs of the refinance calculator: the remaining balance
// of the current loan, and the new loan that would replace it.
type Refinance struct {
	baseCalc
	Balance      float64 `json:"balance"`
	CurrentRate  Percent `json:"currentRate"`
	CurrentTerm  Term    `json:"currentTerm"` // remaining term of the current loan
	NewRate      Percent `json:"newRate"`
	NewTerm      Term    `json:"newTerm"`
	ClosingCosts float64 `json:"closingCosts,omitempty"`
}

func (Refinance) What() CalcType                           { return CalcRefinance }
func (s Refinance) Label() string                          { return s.label(CalcRefinance) }
func (s Refinance) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s Refinance) Validate() error {
	var c checks
	c.amount("loan balance", s.Balance)
	c.rate("current rate", s.CurrentRate)
	c.term("current term", s.CurrentTerm)
	c.rate("new rate", s.NewRate)
	c.term("new term", s.NewTerm)
	c.nonNegative("closing costs", s.ClosingCosts)
	return c.err()
}

// RefinanceResult compares both loans.
type RefinanceResult struct {
	Scenario        Refinance
	CurrentPayment  Money
	NewPayment      Money
	MonthlySavings  Money // negative when the new payment is higher
	BreakEven       int   // months for the savings to repay the closing costs
	HasBreakEven    bool  // false when the new loan does not lower the payment
	LifetimeSavings Money // all payments of the current loan, less all payments of the new one and the closing costs
}

func (*RefinanceResult) What() CalcType { return CalcRefinance }

// Compute compares the payments of both loans on the same balance.
func (s Refinance) Compute(a Assumptions) (*RefinanceResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	current := payment(s.Balance, s.CurrentRate.Monthly(), s.CurrentTerm.Payments())
	next := payment(s.Balance, s.NewRate.Monthly(), s.NewTerm.Payments())
	savings := current - next
	lifetime := current*float64(s.CurrentTerm) - next*float64(s.NewTerm) - s.ClosingCosts

	months, ok := breakEven(s.ClosingCosts, savings)
	return &RefinanceResult{
		Scenario:        s,
		CurrentPayment:  M(current, a.Currency),
		NewPayment:      M(next, a.Currency),
		MonthlySavings:  M(savings, a.Currency),
		BreakEven:       months,
		HasBreakEven:    ok,
		LifetimeSavings: M(lifetime, a.Currency),
	}, nil
}

// breakEven returns the number of months for monthly savings to repay an
// upfront cost. There is none if nothing is saved.
func breakEven(cost, savings float64) (months int, ok bool) {
	if savings <= 0 {
		return 0, false
	}
	return int(math.Ceil(cost / savings)), true
}
