package renderer

import (
	"fmt"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/date"
)

// Table is an amortization schedule summarized by period, with amounts
// converted to Money for display.
type Table struct {
	Period date.Period
	HasDue bool // true when the loan has a first payment date
	Rows   []Row
}

// Row is one period of a Table.
type Row struct {
	Label              string // e.g. "Year 3"
	Due                date.Date
	Paid               mortgage.Money
	Interest           mortgage.Money
	Principal          mortgage.Money
	Balance            mortgage.Money
	CumulativeInterest mortgage.Money
}

// NewTable summarizes a schedule by period.
func NewTable(s *mortgage.Schedule, p date.Period, currency string) *Table {
	if s == nil {
		return nil
	}
	t := &Table{Period: p, HasDue: !s.Loan.FirstPayment.IsZero()}
	for _, sum := range s.Summarize(p) {
		t.Rows = append(t.Rows, Row{
			Label:              fmt.Sprintf("%s %d", capitalize(p.Name()), sum.Index),
			Due:                sum.Due,
			Paid:               mortgage.M(sum.Paid, currency),
			Interest:           mortgage.M(sum.Interest, currency),
			Principal:          mortgage.M(sum.Principal, currency),
			Balance:            mortgage.M(sum.Balance, currency),
			CumulativeInterest: mortgage.M(sum.CumulativeInterest, currency),
		})
	}
	return t
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
