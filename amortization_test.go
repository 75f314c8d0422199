package mortgage

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/etnz/mortgage/date"
)

func TestAmortize(t *testing.T) {
	s, err := Amortize(Loan{Principal: 200000, Rate: 3.5, Term: Years(30)})
	if err != nil {
		t.Fatalf("Amortize() unexpected error: %v", err)
	}

	if got := s.Months(); got != 360 {
		t.Fatalf("Months() = %d, want 360", got)
	}
	assertNear(t, "Payment", s.Payment, 898.089375617647, 1e-9)
	assertNear(t, "TotalInterest()", s.TotalInterest(), 123312.17522235, 1e-4)
	assertNear(t, "TotalPaid()", s.TotalPaid(), 323312.17522235, 1e-4)

	first := s.Installments[0]
	assertNear(t, "first interest", first.Interest, 583.3333333333, 1e-6)
	assertNear(t, "first principal", first.Principal, 314.7560422843, 1e-6)

	assertNear(t, "balance after a year", s.Installments[11].Balance, 196161.7439958676, 1e-4)
	assertNear(t, "balance after 10 years", s.Installments[119].Balance, 154853.75066063323, 1e-4)

	last := s.Installments[359]
	if last.Balance != 0 {
		t.Errorf("last balance = %v, want 0", last.Balance)
	}
}

// TestAmortize_Invariants checks properties that hold for any schedule.
func TestAmortize_Invariants(t *testing.T) {
	loans := []Loan{
		{Principal: 200000, Rate: 3.5, Term: Years(30)},
		{Principal: 200000, Rate: 0, Term: Years(30)},
		{Principal: 200000, Rate: 3.5, Term: Years(30), Extra: 100},
		{Principal: 200000, Rate: 3.5, Term: Years(30), InterestOnly: Years(5)},
		{Principal: 5000, Rate: 24, Term: Months(7), Extra: 5000},
	}
	for _, l := range loans {
		s, err := Amortize(l)
		if err != nil {
			t.Fatalf("Amortize(%+v) unexpected error: %v", l, err)
		}
		var interest, repaid float64
		for _, row := range s.Installments {
			if row.Balance < 0 {
				t.Errorf("%+v: installment %d has a negative balance %v", l, row.Number, row.Balance)
			}
			interest += row.Interest
			repaid += row.Principal + row.Extra
			assertNear(t, "cumulative interest", row.CumulativeInterest, interest, 1e-6)
		}
		assertNear(t, "principal repaid", repaid, l.Principal, 1e-6)
		if last := s.Installments[len(s.Installments)-1]; last.Balance != 0 {
			t.Errorf("%+v: last balance = %v, want 0", l, last.Balance)
		}
		if l.Extra == 0 && s.Months() != l.Term.Payments() {
			t.Errorf("%+v: Months() = %d, want %d", l, s.Months(), l.Term.Payments())
		}
	}
}

func TestAmortize_Extra(t *testing.T) {
	s, err := Amortize(Loan{Principal: 200000, Rate: 3.5, Term: Years(30), Extra: 100})
	if err != nil {
		t.Fatalf("Amortize() unexpected error: %v", err)
	}
	if got := s.Months(); got != 302 {
		t.Errorf("Months() = %d, want 302", got)
	}
	assertNear(t, "TotalInterest()", s.TotalInterest(), 100943.93371509, 1e-4)

	last := s.Installments[len(s.Installments)-1]
	if last.Extra != 0 {
		t.Errorf("last installment extra = %v, want 0 as the payment already clears the loan", last.Extra)
	}
	assertNear(t, "last principal", last.Principal, 517.5222143870428, 1e-4)
}

func TestAmortize_InterestOnly(t *testing.T) {
	s, err := Amortize(Loan{Principal: 200000, Rate: 3.5, Term: Years(30), InterestOnly: Years(5)})
	if err != nil {
		t.Fatalf("Amortize() unexpected error: %v", err)
	}
	assertNear(t, "InterestOnlyPayment", s.InterestOnlyPayment, 583.3333333333334, 1e-9)
	assertNear(t, "Payment", s.Payment, 1001.2471405189833, 1e-9)
	for _, row := range s.Installments[:60] {
		if row.Principal != 0 || row.Balance != 200000 {
			t.Fatalf("installment %d repaid principal during the interest-only period: %+v", row.Number, row)
		}
	}
	assertNear(t, "balance after 6 years", s.Installments[71].Balance, 194903.79861177938, 1e-4)
	assertNear(t, "TotalInterest()", s.TotalInterest(), 135374.14215569594, 1e-4)
}

func TestAmortize_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		loan Loan
	}{
		{"interest only too long", Loan{Principal: 1000, Rate: 3, Term: Years(5), InterestOnly: Years(5)}},
		{"negative interest only", Loan{Principal: 1000, Rate: 3, Term: Years(5), InterestOnly: -1}},
		{"negative extra", Loan{Principal: 1000, Rate: 3, Term: Years(5), Extra: -10}},
		{"NaN principal", Loan{Principal: math.NaN(), Rate: 3, Term: Years(5)}},
		{"infinite principal", Loan{Principal: math.Inf(1), Rate: 3, Term: Years(5)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Amortize(tc.loan); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Amortize() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAmortize_DueDates(t *testing.T) {
	s, err := Amortize(Loan{Principal: 1200, Rate: 0, Term: Months(3), FirstPayment: date.New(2025, time.January, 31)})
	if err != nil {
		t.Fatalf("Amortize() unexpected error: %v", err)
	}
	want := []date.Date{
		date.New(2025, time.January, 31),
		date.New(2025, time.February, 28),
		date.New(2025, time.March, 31),
	}
	for i, row := range s.Installments {
		if row.Due != want[i] {
			t.Errorf("installment %d due %v, want %v", row.Number, row.Due, want[i])
		}
		assertNear(t, "payment", row.Payment, 400, 1e-9)
	}
}

func TestSchedule_Summarize(t *testing.T) {
	s, err := Amortize(Loan{Principal: 200000, Rate: 3.5, Term: Years(30), Extra: 100})
	if err != nil {
		t.Fatalf("Amortize() unexpected error: %v", err)
	}

	yearly := s.Summarize(date.Yearly)
	// 302 months: 25 full years and 2 months.
	if got := len(yearly); got != 26 {
		t.Fatalf("len(Summarize(Yearly)) = %d, want 26", got)
	}
	assertNear(t, "first year interest", yearly[0].Interest, s.Installments[11].CumulativeInterest, 1e-9)
	assertNear(t, "first year principal", yearly[0].Principal, 200000-s.Installments[11].Balance, 1e-6)
	if last := yearly[25]; last.Balance != 0 || last.Index != 26 {
		t.Errorf("last summary = %+v, want index 26 with a zero balance", last)
	}

	var paid float64
	for _, q := range s.Summarize(date.Quarterly) {
		paid += q.Paid
	}
	assertNear(t, "quarterly paid", paid, s.TotalPaid(), 1e-6)

	if got := len(s.Summarize(date.Monthly)); got != s.Months() {
		t.Errorf("len(Summarize(Monthly)) = %d, want %d", got, s.Months())
	}
}

func TestAmortize_SmallestLoan(t *testing.T) {
	if _, err := Amortize(Loan{Principal: 5e-7, Rate: 3.5, Term: Years(30)}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Amortize() of a loan below a cent error = %v, want ErrInvalidInput", err)
	}

	s, err := Amortize(Loan{Principal: 0.01, Rate: 3.5, Term: Years(30)})
	if err != nil {
		t.Fatalf("Amortize() unexpected error: %v", err)
	}
	if got := s.Months(); got != 360 {
		t.Errorf("Amortize() of a one cent loan has %d installments, want 360", got)
	}
	if last := s.Installments[len(s.Installments)-1]; last.Balance != 0 {
		t.Errorf("last balance = %v, want 0", last.Balance)
	}
}
