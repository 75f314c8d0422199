package mortgage

import (
	"math"

	"github.com/etnz/mortgage/date"
)

// settled is the balance under which a loan is considered repaid. It absorbs
// the float residue of the last payment, far below a cent.
const settled = 1e-6

// Loan describes a fixed rate loan to amortize.
type Loan struct {
	Principal    float64
	Rate         Percent
	Term         Term
	InterestOnly Term      // leading months where only interest is paid
	Extra        float64   // extra principal paid with each amortizing payment
	FirstPayment date.Date // optional, due date of the first installment
}

// Validate checks the loan, every failure is reported.
func (l Loan) Validate() error {
	var c checks
	c.amount("principal", l.Principal)
	c.rate("rate", l.Rate)
	c.term("term", l.Term)
	c.nonNegative("extra payment", l.Extra)
	if l.InterestOnly < 0 {
		c.add("interest-only period must not be negative, got %v", int(l.InterestOnly))
	} else if l.Term > 0 && l.InterestOnly >= l.Term {
		c.add("interest-only period %v must be shorter than the term %v", l.InterestOnly, l.Term)
	}
	return c.err()
}

// Installment is one row of an amortization schedule.
type Installment struct {
	Number             int       // 1-based payment number
	Due                date.Date // zero if the loan has no first payment date
	Payment            float64   // scheduled payment: interest + principal
	Interest           float64
	Principal          float64
	Extra              float64 // additional principal paid on top of Payment
	Balance            float64 // remaining balance after this installment
	CumulativeInterest float64
}

// Schedule is the month by month repayment of a Loan.
type Schedule struct {
	Loan Loan
	// InterestOnlyPayment is the payment during the interest-only period.
	InterestOnlyPayment float64
	// Payment is the level amortizing payment.
	Payment      float64
	Installments []Installment
}

// Amortize computes the schedule of a loan.
//
// Each month the interest accrues on the balance at the monthly rate, the
// rest of the payment repays principal, then the extra payment (if any) is
// applied. The last installment repays exactly the remaining balance, so the
// balance never goes negative and a loan without extra payments has exactly
// Term installments.
func Amortize(l Loan) (*Schedule, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	r := l.Rate.Monthly()
	n := l.Term.Payments()
	io := l.InterestOnly.Payments()

	s := &Schedule{
		Loan:                l,
		InterestOnlyPayment: l.Principal * r,
		Payment:             payment(l.Principal, r, n-io),
		Installments:        make([]Installment, 0, n),
	}

	balance := l.Principal
	var cumulated float64
	for k := 1; k <= n && balance > settled; k++ {
		row := Installment{Number: k, Interest: balance * r}
		if !l.FirstPayment.IsZero() {
			row.Due = l.FirstPayment.AddMonths(k - 1)
		}

		if k > io {
			row.Principal = s.Payment - row.Interest
			if row.Principal > balance || k == n {
				row.Principal = balance
			}
			if rest := balance - row.Principal; l.Extra > 0 && rest > settled {
				row.Extra = math.Min(l.Extra, rest)
			}
		}
		row.Payment = row.Interest + row.Principal

		balance -= row.Principal + row.Extra
		if balance < settled {
			balance = 0
		}
		cumulated += row.Interest
		row.Balance = balance
		row.CumulativeInterest = cumulated
		s.Installments = append(s.Installments, row)
	}
	return s, nil
}

// Months returns the number of installments until the loan is repaid.
func (s *Schedule) Months() int { return len(s.Installments) }

// TotalInterest is the interest paid over the life of the loan.
func (s *Schedule) TotalInterest() float64 {
	if len(s.Installments) == 0 {
		return 0
	}
	return s.Installments[len(s.Installments)-1].CumulativeInterest
}

// TotalPaid is everything paid to the lender: principal, interest and extra.
func (s *Schedule) TotalPaid() float64 {
	var sum float64
	for _, row := range s.Installments {
		sum += row.Payment + row.Extra
	}
	return sum
}

// Summary aggregates the installments of one period.
type Summary struct {
	Index              int // 1-based period index since the first payment
	Period             date.Period
	Due                date.Date // due date of the last installment of the period
	Paid               float64   // payments and extra payments
	Interest           float64
	Principal          float64 // principal repaid, extra payments included
	Balance            float64 // balance at the end of the period
	CumulativeInterest float64
}

// Summarize aggregates the schedule in buckets of one period counted from the
// first payment: 12 payments per year, 3 per quarter. A last, partial bucket
// is kept when the loan is repaid early.
func (s *Schedule) Summarize(p date.Period) []Summary {
	size := p.Months()
	list := make([]Summary, 0, len(s.Installments)/size+1)
	for start := 0; start < len(s.Installments); start += size {
		end := min(start+size, len(s.Installments))
		sum := Summary{Index: start/size + 1, Period: p}
		for _, row := range s.Installments[start:end] {
			sum.Paid += row.Payment + row.Extra
			sum.Interest += row.Interest
			sum.Principal += row.Principal + row.Extra
		}
		last := s.Installments[end-1]
		sum.Due = last.Due
		sum.Balance = last.Balance
		sum.CumulativeInterest = last.CumulativeInterest
		list = append(list, sum)
	}
	return list
}
