package date

import (
	"fmt"
	"strings"
)

// Period is the granularity at which a payment calendar is summarized.
type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Name returns the singular noun for the period (e.g., "month", "year").
func (p Period) Name() string {
	switch p {
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	default:
		return "year"
	}
}

// Months returns how many monthly payments fall in one period.
func (p Period) Months() int {
	switch p {
	case Quarterly:
		return 3
	case Yearly:
		return 12
	default:
		return 1
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "monthly", "month", "m":
		return Monthly, nil
	case "quarterly", "quarter", "q":
		return Quarterly, nil
	case "yearly", "year", "annual", "y":
		return Yearly, nil
	default:
		return Yearly, fmt.Errorf("unknown period %q", p)
	}
}
