package mortgage

import (
	"fmt"

	"github.com/etnz/mortgage/date"
)

// TaxBenefit are the inputs of the mortgage interest deduction estimate.
type TaxBenefit struct {
	baseCalc
	Price       float64 `json:"price"`
	DownPayment float64 `json:"downPayment,omitempty"`
	Rate        Percent `json:"rate"`
	Term        Term    `json:"term"`
	PropertyTax float64 `json:"propertyTax,omitempty"` // annual
}

func (TaxBenefit) What() CalcType                           { return CalcTax }
func (s TaxBenefit) Label() string                          { return s.label(CalcTax) }
func (s TaxBenefit) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s TaxBenefit) Validate() error {
	var c checks
	c.positive("home price", s.Price)
	c.nonNegative("down payment", s.DownPayment)
	if s.Price > 0 && s.Price-s.DownPayment < minAmount {
		c.add("down payment %v leaves no loan on the home price %v", s.DownPayment, s.Price)
	}
	c.rate("interest rate", s.Rate)
	c.term("loan term", s.Term)
	c.nonNegative("property tax", s.PropertyTax)
	return c.err()
}

// TaxBenefitResult estimates the first year deductions and their value.
type TaxBenefitResult struct {
	Scenario       TaxBenefit
	LoanAmount     Money
	AnnualPayments Money // mortgage payments of the first year
	AnnualInterest Money // interest paid in the first year
	PropertyTax    Money
	Deductions     Money
	TaxBracket     Percent
	TaxSavings     Money
}

func (*TaxBenefitResult) What() CalcType { return CalcTax }

// Compute sums the interest of the first twelve installments (fewer if the
// loan is shorter) and applies the tax bracket to the deductions.
func (s TaxBenefit) Compute(a Assumptions) (*TaxBenefitResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	loan := s.Price - s.DownPayment
	sch, err := Amortize(Loan{Principal: loan, Rate: s.Rate, Term: s.Term})
	if err != nil {
		return nil, err
	}
	years := sch.Summarize(date.Yearly)
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: empty schedule for a loan of %v", ErrInvalidInput, loan)
	}
	first := years[0]
	deductions := first.Interest + s.PropertyTax

	cur := a.Currency
	return &TaxBenefitResult{
		Scenario:       s,
		LoanAmount:     M(loan, cur),
		AnnualPayments: M(first.Paid, cur),
		AnnualInterest: M(first.Interest, cur),
		PropertyTax:    M(s.PropertyTax, cur),
		Deductions:     M(deductions, cur),
		TaxBracket:     Percent(a.TaxBracket * 100),
		TaxSavings:     M(deductions*a.TaxBracket, cur),
	}, nil
}
