package mortgage

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is a rate expressed in percentage points: 3.5 means 3.5%.
type Percent float64

// Monthly returns the monthly periodic rate of an annual nominal rate.
func (p Percent) Monthly() float64 { return float64(p) / 100 / 12 }

// Fraction returns the rate as a fraction: 3.5% is 0.035.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Precise prints the rate with three decimals, as APR are disclosed.
func (p Percent) Precise() string {
	return fmt.Sprintf("%.3f%%", float64(p))
}

// ParsePercent reads "3.5" or "3.5%".
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent(f), nil
}

// Set implements flag.Value.
func (p *Percent) Set(s string) error {
	parsed, err := ParsePercent(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
