package mortgage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Term is a loan duration counted in monthly payments.
type Term int

// Years returns a term of y years.
func Years(y int) Term { return Term(12 * y) }

// Months returns a term of m months.
func Months(m int) Term { return Term(m) }

// Payments returns the number of monthly payments.
func (t Term) Payments() int { return int(t) }

// Years returns the term in (possibly fractional) years.
func (t Term) Years() float64 { return float64(t) / 12 }

// String prints the term as "30y", "18m" or "15y6m".
func (t Term) String() string {
	y, m := int(t)/12, int(t)%12
	switch {
	case y == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dy", y)
	default:
		return fmt.Sprintf("%dy%dm", y, m)
	}
}

// ParseTerm reads a term. A bare number is a number of years, like the loan
// term of a mortgage form; "y" and "m" suffixes are accepted and can be combined.
func ParseTerm(s string) (Term, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty term")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > int(maxTerm)/12 {
			return 0, fmt.Errorf("invalid term %q: out of range", s)
		}
		return Years(n), nil
	}
	var total int
	seen := map[byte]bool{}
	rest := s
	for rest != "" {
		i := strings.IndexAny(rest, "ym")
		if i <= 0 {
			return 0, fmt.Errorf("invalid term %q want format like 30y, 360m or 15y6m", s)
		}
		unit := rest[i]
		if seen[unit] {
			return 0, fmt.Errorf("invalid term %q: %q appears twice", s, unit)
		}
		seen[unit] = true
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return 0, fmt.Errorf("invalid term %q: %w", s, err)
		}
		if n < 0 || n > int(maxTerm) {
			return 0, fmt.Errorf("invalid term %q: out of range", s)
		}
		if unit == 'y' {
			total += 12 * n
		} else {
			total += n
		}
		rest = rest[i+1:]
	}
	return Term(total), nil
}

// MarshalJSON writes the term in its human readable form.
func (t Term) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON accepts either a string ("30y") or a number of years (30).
func (t *Term) UnmarshalJSON(data []byte) error {
	var years int
	if err := json.Unmarshal(data, &years); err == nil {
		*t = Years(years)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("term must be a string or a number of years: %w", err)
	}
	parsed, err := ParseTerm(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Set implements flag.Value.
func (t *Term) Set(s string) error {
	parsed, err := ParseTerm(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
