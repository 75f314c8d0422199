package mortgage

import "fmt"

// CalcType identifies a calculation in a scenario book.
type CalcType string

// Calculation types used to identify scenarios.
const (
	CalcMortgage     CalcType = "mortgage"
	CalcAPR          CalcType = "apr"
	CalcExtra        CalcType = "extra"
	CalcRefinance    CalcType = "refinance"
	CalcPrincipal    CalcType = "principal"
	CalcInterestOnly CalcType = "interest-only"
	CalcAfford       CalcType = "afford"
	CalcIncome       CalcType = "income"
	CalcPoints       CalcType = "points"
	CalcTax          CalcType = "tax"
)

// CalcTypes lists every calculation in the order they are documented.
var CalcTypes = []CalcType{
	CalcMortgage, CalcAPR, CalcExtra, CalcRefinance, CalcPrincipal,
	CalcInterestOnly, CalcAfford, CalcIncome, CalcPoints, CalcTax,
}

// ParseCalcType returns the calculation type named s.
func ParseCalcType(s string) (CalcType, error) {
	for _, c := range CalcTypes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCalc, s)
}

// Scenario is the set of inputs of one calculation.
type Scenario interface {
	What() CalcType  // What returns the calculation type of the scenario.
	Label() string   // Label returns the scenario name, or its type if it has none.
	Comment() string // Comment returns the scenario memo.
	Validate() error // Validate reports every invalid input.
	Evaluate(Assumptions) (Result, error)
}

// Result is the outcome of a Scenario evaluation.
type Result interface {
	What() CalcType
}

// baseCalc holds the fields common to every scenario.
type baseCalc struct {
	Name string `json:"name,omitempty"` // Name is a user label for the scenario.
	Memo string `json:"memo,omitempty"` // Memo is a free comment.
}

func (b baseCalc) Comment() string { return b.Memo }

func (b baseCalc) label(c CalcType) string {
	if b.Name != "" {
		return b.Name
	}
	return string(c)
}
