package renderer

import (
	"fmt"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/date"
)

// Report is the data of a calculation report template.
type Report struct {
	Title    string
	Memo     string
	Currency string
	Result   mortgage.Result
	Table    *Table // periodic schedule, nil if the calculation has none
}

// titles of the reports by calculation.
var titles = map[mortgage.CalcType]string{
	mortgage.CalcMortgage:     "Mortgage Payment",
	mortgage.CalcAPR:          "Annual Percentage Rate",
	mortgage.CalcExtra:        "Extra Payments",
	mortgage.CalcRefinance:    "Refinance",
	mortgage.CalcPrincipal:    "Loan Principal",
	mortgage.CalcInterestOnly: "Interest-Only Mortgage",
	mortgage.CalcAfford:       "Home Affordability",
	mortgage.CalcIncome:       "Required Income",
	mortgage.CalcPoints:       "Discount Points",
	mortgage.CalcTax:          "Mortgage Tax Benefit",
}

// NewReport prepares a result for rendering, with its schedule summarized by period.
func NewReport(result mortgage.Result, p date.Period) (*Report, error) {
	var (
		s        mortgage.Scenario
		currency string
		schedule *mortgage.Schedule
	)
	switch r := result.(type) {
	case *mortgage.MortgageResult:
		s, currency, schedule = r.Scenario, r.Payment.Currency(), r.Schedule
	case *mortgage.APRResult:
		s, currency = r.Scenario, r.Payment.Currency()
	case *mortgage.ExtraPaymentResult:
		s, currency, schedule = r.Scenario, r.Payment.Currency(), r.With
	case *mortgage.RefinanceResult:
		s, currency = r.Scenario, r.NewPayment.Currency()
	case *mortgage.PrincipalResult:
		s, currency, schedule = r.Scenario, r.Principal.Currency(), r.Schedule
	case *mortgage.InterestOnlyResult:
		s, currency, schedule = r.Scenario, r.AmortizingPayment.Currency(), r.Schedule
	case *mortgage.AffordabilityResult:
		s, currency = r.Scenario, r.Price.Currency()
	case *mortgage.IncomeQualifierResult:
		s, currency = r.Scenario, r.LoanAmount.Currency()
	case *mortgage.PointsResult:
		s, currency = r.Scenario, r.Payment.Currency()
	case *mortgage.TaxBenefitResult:
		s, currency = r.Scenario, r.LoanAmount.Currency()
	default:
		return nil, fmt.Errorf("cannot render a %T", result)
	}

	title := titles[s.What()]
	if s.Label() != string(s.What()) {
		title += ": " + s.Label()
	}
	return &Report{
		Title:    title,
		Memo:     s.Comment(),
		Currency: currency,
		Result:   result,
		Table:    NewTable(schedule, p, currency),
	}, nil
}

// Headline returns the key figure of a result, as printed in a scenario list.
func Headline(result mortgage.Result) string {
	switch r := result.(type) {
	case *mortgage.MortgageResult:
		return r.Payment.String() + " per month"
	case *mortgage.APRResult:
		return r.APR.Precise() + " APR"
	case *mortgage.ExtraPaymentResult:
		return r.InterestSaved.String() + " interest saved"
	case *mortgage.RefinanceResult:
		if !r.HasBreakEven {
			return "no break-even"
		}
		return fmt.Sprintf("break-even after %d months", r.BreakEven)
	case *mortgage.PrincipalResult:
		return r.Principal.String() + " loan"
	case *mortgage.InterestOnlyResult:
		return r.AmortizingPayment.String() + " per month after the interest-only period"
	case *mortgage.AffordabilityResult:
		return r.Price.String() + " home"
	case *mortgage.IncomeQualifierResult:
		return r.RequiredIncome.String() + " per year"
	case *mortgage.PointsResult:
		if !r.HasBreakEven {
			return "no break-even"
		}
		return fmt.Sprintf("break-even after %d months", r.BreakEven)
	case *mortgage.TaxBenefitResult:
		return r.TaxSavings.String() + " saved the first year"
	default:
		return ""
	}
}
