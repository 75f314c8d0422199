package mortgage

import (
	"errors"
	"fmt"
)

// Assumptions are the rules of thumb the calculators rely on. They are not
// part of a scenario: changing them re-evaluates every scenario of a book.
type Assumptions struct {
	// Currency of every amount (ISO 4217 code).
	Currency string `toml:"currency"`
	// FrontEndRatio is the maximum share of gross monthly income spent on housing.
	FrontEndRatio float64 `toml:"front_end_ratio"`
	// BackEndRatio is the maximum share of gross monthly income spent on all debts.
	BackEndRatio float64 `toml:"back_end_ratio"`
	// TaxBracket is the marginal income tax rate applied to deductions.
	TaxBracket float64 `toml:"tax_bracket"`
	// PointReduction is the rate reduction bought by one discount point.
	PointReduction Percent `toml:"point_reduction"`
	// APRTolerance is the absolute tolerance on the amount financed.
	APRTolerance float64 `toml:"apr_tolerance"`
	// APRMaxIterations bounds Newton's method.
	APRMaxIterations int `toml:"apr_max_iterations"`
}

// DefaultAssumptions returns the usual US lending rules of thumb.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Currency:         "USD",
		FrontEndRatio:    0.28,
		BackEndRatio:     0.36,
		TaxBracket:       0.22,
		PointReduction:   0.25,
		APRTolerance:     1e-7,
		APRMaxIterations: 100,
	}
}

// Validate reports every out of range assumption.
func (a Assumptions) Validate() error {
	var c checks
	if a.Currency == "" {
		c.add("currency is missing")
	}
	c.fraction("front-end ratio", a.FrontEndRatio)
	c.fraction("back-end ratio", a.BackEndRatio)
	if a.TaxBracket < 0 || a.TaxBracket >= 1 {
		c.add("tax bracket must be in [0, 1), got %v", a.TaxBracket)
	}
	c.nonNegative("point reduction", float64(a.PointReduction))
	c.positive("APR tolerance", a.APRTolerance)
	if a.APRMaxIterations <= 0 {
		c.add("APR max iterations must be positive, got %d", a.APRMaxIterations)
	}
	if err := c.err(); err != nil {
		return fmt.Errorf("assumptions: %w", err)
	}
	return nil
}

// validate checks the assumptions, then the inputs of a calculation.
func validate(s interface{ Validate() error }, a Assumptions) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.Validate()
}

// checks accumulates validation failures, each wrapping ErrInvalidInput.
type checks []error

func (c *checks) add(format string, args ...any) {
	*c = append(*c, fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...))
}

func (c *checks) finite(name string, v float64) bool {
	if v != v || v > maxAmount || v < -maxAmount {
		c.add("%s must be a finite number, got %v", name, v)
		return false
	}
	return true
}

func (c *checks) positive(name string, v float64) {
	if c.finite(name, v) && v <= 0 {
		c.add("%s must be positive, got %v", name, v)
	}
}

// amount accepts loan amounts of at least one cent.
func (c *checks) amount(name string, v float64) {
	if c.finite(name, v) && v < minAmount {
		c.add("%s must be at least %v, got %v", name, minAmount, v)
	}
}

func (c *checks) nonNegative(name string, v float64) {
	if c.finite(name, v) && v < 0 {
		c.add("%s must not be negative, got %v", name, v)
	}
}

// rate accepts annual rates from 0 to 100%.
func (c *checks) rate(name string, p Percent) {
	if v := float64(p); c.finite(name, v) && (v < 0 || v > 100) {
		c.add("%s must be between 0%% and 100%%, got %v", name, p)
	}
}

func (c *checks) fraction(name string, v float64) {
	if c.finite(name, v) && (v <= 0 || v > 1) {
		c.add("%s must be in (0, 1], got %v", name, v)
	}
}

func (c *checks) term(name string, t Term) {
	if t <= 0 {
		c.add("%s must be positive, got %v", name, int(t))
	} else if t > maxTerm {
		c.add("%s must not exceed %v, got %v", name, maxTerm, t)
	}
}

func (c checks) err() error { return errors.Join(c...) }

const (
	// maxAmount rejects infinities and values beyond any realistic loan.
	maxAmount = 1e15
	// minAmount is the smallest loan worth a schedule.
	minAmount = 0.01
	// maxTerm bounds schedules to 100 years of monthly payments.
	maxTerm = Term(1200)
)
