package mortgage

// IncomeQualifier are the inputs of the income qualifier: what must be earned
// to buy a given home.
type IncomeQualifier struct {
	baseCalc
	Price        float64 `json:"price"`
	DownPayment  float64 `json:"downPayment,omitempty"`
	Rate         Percent `json:"rate"`
	Term         Term    `json:"term"`
	PropertyTax  float64 `json:"propertyTax,omitempty"`  // annual
	Insurance    float64 `json:"insurance,omitempty"`    // annual
	HOA          float64 `json:"hoa,omitempty"`          // annual dues
	MonthlyDebts float64 `json:"monthlyDebts,omitempty"` // other debts, back-end ratio only
}

func (IncomeQualifier) What() CalcType                           { return CalcIncome }
func (s IncomeQualifier) Label() string                          { return s.label(CalcIncome) }
func (s IncomeQualifier) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s IncomeQualifier) Validate() error {
	var c checks
	c.positive("home price", s.Price)
	c.nonNegative("down payment", s.DownPayment)
	if s.Price > 0 && s.Price-s.DownPayment < minAmount {
		c.add("down payment %v leaves no loan on the home price %v", s.DownPayment, s.Price)
	}
	c.rate("interest rate", s.Rate)
	c.term("loan term", s.Term)
	c.nonNegative("property tax", s.PropertyTax)
	c.nonNegative("insurance", s.Insurance)
	c.nonNegative("HOA dues", s.HOA)
	c.nonNegative("monthly debts", s.MonthlyDebts)
	return c.err()
}

// Expense is one line of the monthly housing cost.
type Expense struct {
	Name   string
	Amount Money
}

// IncomeQualifierResult is the yearly income required under each ratio.
type IncomeQualifierResult struct {
	Scenario       IncomeQualifier
	LoanAmount     Money
	Expenses       []Expense // monthly
	TotalMonthly   Money
	IncomeFront    Money // yearly income so that housing stays under the front-end ratio
	IncomeBack     Money // yearly income so that housing and debts stay under the back-end ratio
	RequiredIncome Money // the highest of both
}

func (*IncomeQualifierResult) What() CalcType { return CalcIncome }

// Compute adds up the monthly housing cost (PITI and HOA) and divides it by
// each ratio.
func (s IncomeQualifier) Compute(a Assumptions) (*IncomeQualifierResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	loan := s.Price - s.DownPayment
	pmt := payment(loan, s.Rate.Monthly(), s.Term.Payments())

	cur := a.Currency
	expenses := []Expense{
		{"Mortgage", M(pmt, cur)},
		{"Property Tax", M(s.PropertyTax/12, cur)},
		{"Home Insurance", M(s.Insurance/12, cur)},
		{"HOA", M(s.HOA/12, cur)},
	}
	total := pmt + (s.PropertyTax+s.Insurance+s.HOA)/12
	front := total / a.FrontEndRatio * 12
	back := (total + s.MonthlyDebts) / a.BackEndRatio * 12

	return &IncomeQualifierResult{
		Scenario:       s,
		LoanAmount:     M(loan, cur),
		Expenses:       expenses,
		TotalMonthly:   M(total, cur),
		IncomeFront:    M(front, cur),
		IncomeBack:     M(back, cur),
		RequiredIncome: M(max(front, back), cur),
	}, nil
}
