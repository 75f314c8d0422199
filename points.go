package mortgage

import "math"

// Points are the inputs of the discount points calculator.
type Points struct {
	baseCalc
	Principal float64 `json:"principal"`
	Rate      Percent `json:"rate"`
	Term      Term    `json:"term"`
	Points    float64 `json:"points"` // one point costs 1% of the loan
}

func (Points) What() CalcType                           { return CalcPoints }
func (s Points) Label() string                          { return s.label(CalcPoints) }
func (s Points) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s Points) Validate() error {
	var c checks
	c.amount("loan amount", s.Principal)
	c.rate("interest rate", s.Rate)
	c.term("loan term", s.Term)
	c.nonNegative("points", s.Points)
	if s.Points > 100 {
		c.add("points must not exceed 100, got %v", s.Points)
	}
	return c.err()
}

// PointsYear is the cumulative cost of the loan after some years.
type PointsYear struct {
	Year          int
	WithPoints    Money // payments and the points cost
	WithoutPoints Money
}

// PointsResult compares the loan with and without buying points.
type PointsResult struct {
	Scenario       Points
	PointCost      Money
	Payment        Money
	ReducedRate    Percent
	ReducedPayment Money
	MonthlySavings Money
	BreakEven      int  // months for the savings to repay the points
	HasBreakEven   bool // false when the points do not lower the payment
	Yearly         []PointsYear
}

func (*PointsResult) What() CalcType { return CalcPoints }

// Compute lowers the rate by Assumptions.PointReduction per point (never
// below zero) and compares the payments.
func (s Points) Compute(a Assumptions) (*PointsResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	n := s.Term.Payments()
	cost := s.Points / 100 * s.Principal
	reduced := Percent(math.Max(0, float64(s.Rate)-s.Points*float64(a.PointReduction)))
	base := payment(s.Principal, s.Rate.Monthly(), n)
	lower := payment(s.Principal, reduced.Monthly(), n)
	months, ok := breakEven(cost, base-lower)

	cur := a.Currency
	years := ceilDiv(n, 12)
	yearly := make([]PointsYear, 0, years)
	for y := 1; y <= years; y++ {
		paid := float64(min(12*y, n))
		yearly = append(yearly, PointsYear{
			Year:          y,
			WithPoints:    M(paid*lower+cost, cur),
			WithoutPoints: M(paid*base, cur),
		})
	}

	return &PointsResult{
		Scenario:       s,
		PointCost:      M(cost, cur),
		Payment:        M(base, cur),
		ReducedRate:    reduced,
		ReducedPayment: M(lower, cur),
		MonthlySavings: M(base-lower, cur),
		BreakEven:      months,
		HasBreakEven:   ok,
		Yearly:         yearly,
	}, nil
}
