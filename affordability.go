package mortgage

import "math"

// Affordability are the inputs of the home affordability calculator.
type Affordability struct {
	baseCalc
	AnnualIncome float64 `json:"annualIncome"`
	MonthlyDebts float64 `json:"monthlyDebts,omitempty"`
	DownPayment  float64 `json:"downPayment,omitempty"`
	Rate         Percent `json:"rate"`
	Term         Term    `json:"term"`
	PropertyTax  float64 `json:"propertyTax,omitempty"` // annual
	Insurance    float64 `json:"insurance,omitempty"`   // annual
}

func (Affordability) What() CalcType                           { return CalcAfford }
func (s Affordability) Label() string                          { return s.label(CalcAfford) }
func (s Affordability) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s Affordability) Validate() error {
	var c checks
	c.positive("annual income", s.AnnualIncome)
	c.nonNegative("monthly debts", s.MonthlyDebts)
	c.nonNegative("down payment", s.DownPayment)
	c.rate("interest rate", s.Rate)
	c.term("loan term", s.Term)
	c.nonNegative("property tax", s.PropertyTax)
	c.nonNegative("insurance", s.Insurance)
	return c.err()
}

// AffordabilityResult is the most expensive home the income can carry.
type AffordabilityResult struct {
	Scenario      Affordability
	FrontEndLimit Money // housing cap: income * front-end ratio
	BackEndLimit  Money // debts cap: income * back-end ratio - other debts
	Escrow        Money // monthly property tax and insurance
	Payment       Money // principal and interest payment the income can carry
	LoanAmount    Money
	DownPayment   Money
	Price         Money
	BackEndBound  bool // true when other debts, not housing, limit the payment
}

func (*AffordabilityResult) What() CalcType { return CalcAfford }

// Compute applies the front-end and back-end ratios, keeps the lowest limit,
// removes the escrow and converts the remaining payment into a loan amount.
// When debts leave nothing for a mortgage, the price is the down payment.
func (s Affordability) Compute(a Assumptions) (*AffordabilityResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	income := s.AnnualIncome / 12
	front := income * a.FrontEndRatio
	back := income*a.BackEndRatio - s.MonthlyDebts
	escrow := (s.PropertyTax + s.Insurance) / 12

	pmt := math.Max(0, math.Min(front, back)-escrow)
	loan := presentValue(pmt, s.Rate.Monthly(), s.Term.Payments())

	cur := a.Currency
	return &AffordabilityResult{
		Scenario:      s,
		FrontEndLimit: M(front, cur),
		BackEndLimit:  M(back, cur),
		Escrow:        M(escrow, cur),
		Payment:       M(pmt, cur),
		LoanAmount:    M(loan, cur),
		DownPayment:   M(s.DownPayment, cur),
		Price:         M(loan+s.DownPayment, cur),
		BackEndBound:  back < front,
	}, nil
}
