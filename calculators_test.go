package mortgage

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/mortgage/date"
)

func TestMortgage_Compute(t *testing.T) {
	got, err := Mortgage{Principal: 200000, Rate: 3.5, Term: Years(30), FirstPayment: date.New(2025, time.November, 1)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "Payment", got.Payment, 898.09)
	assertCents(t, "TotalInterest", got.TotalInterest, 123312.18)
	assertCents(t, "TotalPaid", got.TotalPaid, 323312.18)
	if last := got.Schedule.Installments[359].Due; last != date.New(2055, time.October, 1) {
		t.Errorf("last due date = %v, want 2055-10-01", last)
	}
}

func TestExtraPayment_Compute(t *testing.T) {
	got, err := ExtraPayment{Principal: 200000, Rate: 3.5, Term: Years(30), Extra: 100}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.With.Months() != 302 || got.Without.Months() != 360 {
		t.Errorf("months = %d/%d, want 302/360", got.With.Months(), got.Without.Months())
	}
	if got.YearsWith() != 26 || got.YearsWithout() != 30 {
		t.Errorf("years = %d/%d, want 26/30", got.YearsWith(), got.YearsWithout())
	}
	if got.MonthsSaved != 58 {
		t.Errorf("MonthsSaved = %d, want 58", got.MonthsSaved)
	}
	assertCents(t, "InterestWith", got.InterestWith, 100943.93)
	assertCents(t, "InterestWithout", got.InterestWithout, 123312.18)
	assertCents(t, "InterestSaved", got.InterestSaved, 22368.24)
}

func TestExtraPayment_None(t *testing.T) {
	got, err := ExtraPayment{Principal: 200000, Rate: 3.5, Term: Years(30)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.MonthsSaved != 0 || !got.InterestSaved.IsZero() {
		t.Errorf("saved %d months and %v, want nothing", got.MonthsSaved, got.InterestSaved)
	}
}

func TestRefinance_Compute(t *testing.T) {
	got, err := Refinance{Balance: 200000, CurrentRate: 4.5, CurrentTerm: Years(30), NewRate: 3.5, NewTerm: Years(30), ClosingCosts: 3000}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "CurrentPayment", got.CurrentPayment, 1013.37)
	assertCents(t, "NewPayment", got.NewPayment, 898.09)
	assertCents(t, "MonthlySavings", got.MonthlySavings, 115.28)
	assertCents(t, "LifetimeSavings", got.LifetimeSavings, 38501.25)
	if !got.HasBreakEven || got.BreakEven != 27 {
		t.Errorf("BreakEven = %d (%v), want 27 months", got.BreakEven, got.HasBreakEven)
	}
}

func TestRefinance_NoSavings(t *testing.T) {
	got, err := Refinance{Balance: 200000, CurrentRate: 3.5, CurrentTerm: Years(30), NewRate: 4.5, NewTerm: Years(30), ClosingCosts: 3000}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.HasBreakEven {
		t.Errorf("HasBreakEven = true (%d months), want false for a higher payment", got.BreakEven)
	}
	if !got.MonthlySavings.IsNegative() || !got.LifetimeSavings.IsNegative() {
		t.Errorf("savings = %v / %v, want negative values", got.MonthlySavings, got.LifetimeSavings)
	}
}

func TestPrincipal_Compute(t *testing.T) {
	got, err := Principal{Payment: 1000, Rate: 3.5, Term: Years(30)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "Principal", got.Principal, 222694.98)
	assertNear(t, "schedule payment", got.Schedule.Payment, 1000, 1e-8)

	got, err = Principal{Payment: 1000, Rate: 0, Term: Years(30)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "Principal at zero rate", got.Principal, 360000)
	if !got.TotalInterest.IsZero() {
		t.Errorf("TotalInterest = %v, want 0", got.TotalInterest)
	}
}

func TestInterestOnly_Compute(t *testing.T) {
	got, err := InterestOnly{Principal: 200000, Rate: 3.5, Term: Years(30), Period: Years(5)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "InterestOnlyPayment", got.InterestOnlyPayment, 583.33)
	assertCents(t, "AmortizingPayment", got.AmortizingPayment, 1001.25)
	assertCents(t, "PaymentIncrease", got.PaymentIncrease, 417.91)
	assertCents(t, "TotalInterest", got.TotalInterest, 135374.14)

	if _, err := (InterestOnly{Principal: 200000, Rate: 3.5, Term: Years(5), Period: Years(5)}).Compute(defaults); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compute() error = %v, want ErrInvalidInput when nothing is left to amortize", err)
	}
}

func TestAffordability_Compute(t *testing.T) {
	got, err := Affordability{AnnualIncome: 75000, MonthlyDebts: 500, DownPayment: 50000, Rate: 3.5, Term: Years(30)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "FrontEndLimit", got.FrontEndLimit, 1750)
	assertCents(t, "BackEndLimit", got.BackEndLimit, 1750)
	assertCents(t, "Payment", got.Payment, 1750)
	assertCents(t, "LoanAmount", got.LoanAmount, 389716.22)
	assertCents(t, "Price", got.Price, 439716.22)
}

func TestAffordability_Escrow(t *testing.T) {
	got, err := Affordability{AnnualIncome: 75000, DownPayment: 50000, Rate: 3.5, Term: Years(30), PropertyTax: 3000, Insurance: 1200}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	// no debts: the front-end ratio binds, less 350 of escrow.
	if got.BackEndBound {
		t.Error("BackEndBound = true, want false without debts")
	}
	assertCents(t, "Escrow", got.Escrow, 350)
	assertCents(t, "Payment", got.Payment, 1400)
}

func TestAffordability_DebtsTooHigh(t *testing.T) {
	got, err := Affordability{AnnualIncome: 36000, MonthlyDebts: 2000, DownPayment: 20000, Rate: 5, Term: Years(30)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if !got.BackEndBound || !got.Payment.IsZero() || !got.LoanAmount.IsZero() {
		t.Errorf("got payment %v and loan %v, want nothing affordable", got.Payment, got.LoanAmount)
	}
	assertCents(t, "Price", got.Price, 20000)
}

func TestIncomeQualifier_Compute(t *testing.T) {
	got, err := IncomeQualifier{Price: 300000, DownPayment: 60000, Rate: 3.5, Term: Years(30), PropertyTax: 3000, Insurance: 1200}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "LoanAmount", got.LoanAmount, 240000)
	assertCents(t, "Mortgage", got.Expenses[0].Amount, 1077.71)
	assertCents(t, "TotalMonthly", got.TotalMonthly, 1427.71)
	assertCents(t, "IncomeFront", got.IncomeFront, 61187.45)
	assertCents(t, "IncomeBack", got.IncomeBack, 47590.24)
	assertCents(t, "RequiredIncome", got.RequiredIncome, 61187.45)
	if len(got.Expenses) != 4 {
		t.Errorf("len(Expenses) = %d, want 4", len(got.Expenses))
	}
}

func TestIncomeQualifier_Invalid(t *testing.T) {
	_, err := IncomeQualifier{Price: 300000, DownPayment: 300000, Rate: 3.5, Term: Years(30)}.Compute(defaults)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compute() error = %v, want ErrInvalidInput for a fully paid home", err)
	}
}

func TestPoints_Compute(t *testing.T) {
	got, err := Points{Principal: 200000, Rate: 3.5, Term: Years(30), Points: 1}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "PointCost", got.PointCost, 2000)
	assertCents(t, "Payment", got.Payment, 898.09)
	assertCents(t, "ReducedPayment", got.ReducedPayment, 870.41)
	assertCents(t, "MonthlySavings", got.MonthlySavings, 27.68)
	if !got.ReducedRate.Equal(3.25) {
		t.Errorf("ReducedRate = %v, want 3.25%%", got.ReducedRate)
	}
	if !got.HasBreakEven || got.BreakEven != 73 {
		t.Errorf("BreakEven = %d (%v), want 73 months", got.BreakEven, got.HasBreakEven)
	}
	if len(got.Yearly) != 30 {
		t.Fatalf("len(Yearly) = %d, want 30", len(got.Yearly))
	}
	assertCents(t, "first year with points", got.Yearly[0].WithPoints, 12444.95)
	assertCents(t, "first year without points", got.Yearly[0].WithoutPoints, 10777.07)
}

func TestPoints_RateFloor(t *testing.T) {
	got, err := Points{Principal: 100000, Rate: 0.5, Term: Years(10), Points: 4}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.ReducedRate != 0 {
		t.Errorf("ReducedRate = %v, want 0", got.ReducedRate)
	}
}

func TestPoints_NoPoints(t *testing.T) {
	got, err := Points{Principal: 100000, Rate: 4, Term: Years(10)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.HasBreakEven {
		t.Errorf("HasBreakEven = true, want false when no point is bought")
	}
}

func TestTaxBenefit_Compute(t *testing.T) {
	got, err := TaxBenefit{Price: 300000, DownPayment: 60000, Rate: 3.5, Term: Years(30), PropertyTax: 3000}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	assertCents(t, "AnnualPayments", got.AnnualPayments, 12932.49)
	assertCents(t, "AnnualInterest", got.AnnualInterest, 8326.58)
	assertCents(t, "Deductions", got.Deductions, 11326.58)
	assertCents(t, "TaxSavings", got.TaxSavings, 2491.85)
	if got.TaxBracket.String() != "22.00%" {
		t.Errorf("TaxBracket = %v, want 22.00%%", got.TaxBracket)
	}
}

func TestTaxBenefit_ShortLoan(t *testing.T) {
	got, err := TaxBenefit{Price: 10000, Rate: 12, Term: Months(6)}.Compute(defaults)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	// the loan is repaid within the year: the first year holds all the interest.
	sch, _ := Amortize(Loan{Principal: 10000, Rate: 12, Term: Months(6)})
	assertNear(t, "AnnualInterest", got.AnnualInterest.Float(), sch.TotalInterest(), 1e-6)
}

// TestScenario_Evaluate checks that every calculation goes through the
// Scenario interface and reports its own type.
func TestScenario_Evaluate(t *testing.T) {
	scenarios := everyScenario()
	if len(scenarios) != len(CalcTypes) {
		t.Fatalf("test covers %d calculations, want %d", len(scenarios), len(CalcTypes))
	}
	for i, s := range scenarios {
		if s.What() != CalcTypes[i] {
			t.Errorf("scenario #%d is a %q, want %q", i, s.What(), CalcTypes[i])
		}
		if s.Label() != string(s.What()) {
			t.Errorf("unnamed scenario label = %q, want %q", s.Label(), s.What())
		}
		r, err := s.Evaluate(defaults)
		if err != nil {
			t.Errorf("%s: Evaluate() unexpected error: %v", s.What(), err)
			continue
		}
		if r.What() != s.What() {
			t.Errorf("%s: result is a %q", s.What(), r.What())
		}
	}
}

// TestScenario_EvaluateAssumptions checks that every calculation rejects
// invalid assumptions instead of dividing by them.
func TestScenario_EvaluateAssumptions(t *testing.T) {
	noIterations := DefaultAssumptions()
	noIterations.APRMaxIterations = 0
	zeroRatios := DefaultAssumptions()
	zeroRatios.FrontEndRatio, zeroRatios.BackEndRatio = 0, 0

	for _, a := range []Assumptions{{}, noIterations, zeroRatios} {
		for _, s := range everyScenario() {
			r, err := s.Evaluate(a)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("%s: Evaluate(%+v) = %v, %v, want ErrInvalidInput", s.What(), a, r, err)
			}
			if errors.Is(err, ErrNoConvergence) {
				t.Errorf("%s: Evaluate(%+v) error = %v, want no ErrNoConvergence", s.What(), a, err)
			}
		}
	}
}

// everyScenario returns a valid scenario of each calculation, in CalcTypes order.
func everyScenario() []Scenario {
	return []Scenario{
		Mortgage{Principal: 200000, Rate: 3.5, Term: Years(30)},
		LoanCost{Principal: 200000, Rate: 3.5, Term: Years(30), OtherFees: 3000},
		ExtraPayment{Principal: 200000, Rate: 3.5, Term: Years(30), Extra: 100},
		Refinance{Balance: 200000, CurrentRate: 4.5, CurrentTerm: Years(30), NewRate: 3.5, NewTerm: Years(30)},
		Principal{Payment: 1000, Rate: 3.5, Term: Years(30)},
		InterestOnly{Principal: 200000, Rate: 3.5, Term: Years(30), Period: Years(5)},
		Affordability{AnnualIncome: 75000, Rate: 3.5, Term: Years(30)},
		IncomeQualifier{Price: 300000, DownPayment: 60000, Rate: 3.5, Term: Years(30)},
		Points{Principal: 200000, Rate: 3.5, Term: Years(30), Points: 1},
		TaxBenefit{Price: 300000, DownPayment: 60000, Rate: 3.5, Term: Years(30)},
	}
}

func TestTaxBenefit_NoLoan(t *testing.T) {
	for _, s := range []TaxBenefit{
		{Price: 300000, DownPayment: 299999.9999999, Rate: 3.5, Term: Years(30)},
		{Price: 300000, DownPayment: 300000, Rate: 3.5, Term: Years(30)},
	} {
		if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Validate(down %v) = %v, want ErrInvalidInput", s.DownPayment, err)
		}
		if _, err := s.Compute(defaults); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Compute(down %v) error = %v, want ErrInvalidInput", s.DownPayment, err)
		}
	}
}

func TestIncomeQualifier_NoLoan(t *testing.T) {
	s := IncomeQualifier{Price: 300000, DownPayment: 299999.9999999, Rate: 3.5, Term: Years(30)}
	if _, err := s.Compute(defaults); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compute() error = %v, want ErrInvalidInput", err)
	}
}
