package date

import "testing"

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in     string
		want   Period
		months int
	}{
		{"month", Monthly, 1},
		{"Quarterly", Quarterly, 3},
		{" year ", Yearly, 12},
		{"y", Yearly, 12},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if err != nil {
				t.Fatalf("ParsePeriod(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got.Months() != tc.months {
				t.Errorf("%v.Months() = %d, want %d", got, got.Months(), tc.months)
			}
		})
	}

	if _, err := ParsePeriod("weekly"); err == nil {
		t.Error("ParsePeriod(\"weekly\") expected an error, payments are monthly")
	}
}
