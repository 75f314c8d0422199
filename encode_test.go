package mortgage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/mortgage/date"
	"github.com/google/go-cmp/cmp"
)

// scenarioOpts lets cmp look into the scenario structs.
var scenarioOpts = cmp.Options{
	cmp.AllowUnexported(
		Mortgage{}, LoanCost{}, ExtraPayment{}, Refinance{}, Principal{},
		InterestOnly{}, Affordability{}, IncomeQualifier{}, Points{}, TaxBenefit{},
		date.Date{},
	),
}

func sampleBook() *Book {
	b := NewBook()
	m := Mortgage{Principal: 200000, Rate: 3.5, Term: Years(30), FirstPayment: date.New(2025, time.November, 1)}
	m.Name = "bank A"
	a := LoanCost{Principal: 200000, Rate: 3.5, Term: Years(30), OriginationFee: 1000, OtherFees: 2000}
	a.Memo = "good faith estimate"
	b.Append(
		m, a,
		ExtraPayment{Principal: 200000, Rate: 3.5, Term: Years(30), Extra: 100},
		Refinance{Balance: 180000, CurrentRate: 4.5, CurrentTerm: Years(25), NewRate: 3.5, NewTerm: Years(30), ClosingCosts: 3000},
		Principal{Payment: 1000, Rate: 3.5, Term: Months(186)},
		InterestOnly{Principal: 200000, Rate: 3.5, Term: Years(30), Period: Years(5)},
		Affordability{AnnualIncome: 75000, MonthlyDebts: 500, DownPayment: 50000, Rate: 3.5, Term: Years(30)},
		IncomeQualifier{Price: 300000, DownPayment: 60000, Rate: 3.5, Term: Years(30), HOA: 600},
		Points{Principal: 200000, Rate: 3.5, Term: Years(30), Points: 1.5},
		TaxBenefit{Price: 300000, DownPayment: 60000, Rate: 3.5, Term: Years(30), PropertyTax: 3000},
	)
	return b
}

func TestEncodeDecodeBook(t *testing.T) {
	want := sampleBook()
	var buf bytes.Buffer
	if err := EncodeBook(&buf, want); err != nil {
		t.Fatalf("EncodeBook() unexpected error: %v", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != want.Len() {
		t.Errorf("EncodeBook() wrote %d lines, want %d", lines, want.Len())
	}

	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() unexpected error: %v", err)
	}
	if diff := cmp.Diff(want.Scenarios(), got.Scenarios(), scenarioOpts); diff != "" {
		t.Errorf("DecodeBook() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeScenario(t *testing.T) {
	m := Mortgage{Principal: 200000, Rate: 3.5, Term: Years(30), FirstPayment: date.New(2025, time.November, 1)}
	m.Name = "bank A"
	var buf bytes.Buffer
	if err := EncodeScenario(&buf, m); err != nil {
		t.Fatalf("EncodeScenario() unexpected error: %v", err)
	}
	want := `{"calc":"mortgage","name":"bank A","principal":200000,"rate":3.5,"term":"30y","on":"2025-11-01"}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeScenario() = %s, want %s", got, want)
	}
}

func TestDecodeBook_Comments(t *testing.T) {
	input := `
# scenarios for the new house

{"calc":"mortgage","principal":200000,"rate":3.5,"term":30}
   # a 15 years alternative
{"calc":"mortgage","principal":200000,"rate":2.75,"term":"180m"}
`
	b, err := DecodeBook(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeBook() unexpected error: %v", err)
	}
	want := []Scenario{
		Mortgage{Principal: 200000, Rate: 3.5, Term: Years(30)},
		Mortgage{Principal: 200000, Rate: 2.75, Term: Years(15)},
	}
	if diff := cmp.Diff(want, b.Scenarios(), scenarioOpts); diff != "" {
		t.Errorf("DecodeBook() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBook_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
		msg   string
	}{
		{name: "unknown calc", input: `{"calc":"lease","principal":1}`, is: ErrUnknownCalc},
		{name: "missing calc", input: `{"principal":1}`, msg: `missing "calc"`},
		{name: "not json", input: `calc=mortgage`, msg: "line 1"},
		{name: "bad term", input: "\n" + `{"calc":"mortgage","term":"forever"}`, msg: "line 2"},
		{name: "bad date", input: `{"calc":"mortgage","on":"2025-13-01"}`, msg: "invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBook(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("DecodeBook() want an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("DecodeBook() error = %v, want %v", err, tt.is)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("DecodeBook() error = %v, want it to contain %q", err, tt.msg)
			}
		})
	}
}

func TestLoadBook_AppendScenario(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "scenarios.jsonl")

	b, err := LoadBook(filename)
	if err != nil {
		t.Fatalf("LoadBook() of a missing file unexpected error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("LoadBook() of a missing file has %d scenarios, want 0", b.Len())
	}

	for _, s := range sampleBook().Scenarios()[:3] {
		if err := AppendScenario(filename, s); err != nil {
			t.Fatalf("AppendScenario() unexpected error: %v", err)
		}
	}
	b, err = LoadBook(filename)
	if err != nil {
		t.Fatalf("LoadBook() unexpected error: %v", err)
	}
	if diff := cmp.Diff(sampleBook().Scenarios()[:3], b.Scenarios(), scenarioOpts); diff != "" {
		t.Errorf("LoadBook() mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(filename, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBook(filename); err == nil || !strings.Contains(err.Error(), filename) {
		t.Errorf("LoadBook() error = %v, want an error naming the file", err)
	}
}
