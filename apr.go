package mortgage

import (
	"fmt"
	"math"
)

// LoanCost are the inputs of the APR calculation: a loan and the fees paid
// upfront to get it.
type LoanCost struct {
	baseCalc
	Principal      float64 `json:"principal"`
	Rate           Percent `json:"rate"`
	Term           Term    `json:"term"`
	OriginationFee float64 `json:"originationFee,omitempty"`
	OtherFees      float64 `json:"otherFees,omitempty"`
}

func (LoanCost) What() CalcType                           { return CalcAPR }
func (s LoanCost) Label() string                          { return s.label(CalcAPR) }
func (s LoanCost) Fees() float64                          { return s.OriginationFee + s.OtherFees }
func (s LoanCost) Evaluate(a Assumptions) (Result, error) { return s.Compute(a) }

func (s LoanCost) Validate() error {
	var c checks
	c.amount("loan amount", s.Principal)
	c.rate("interest rate", s.Rate)
	c.term("loan term", s.Term)
	c.nonNegative("origination fee", s.OriginationFee)
	c.nonNegative("other fees", s.OtherFees)
	if s.Principal > 0 && s.Fees() >= s.Principal {
		c.add("fees %v must be lower than the loan amount %v", s.Fees(), s.Principal)
	}
	return c.err()
}

// APRResult is the annual percentage rate of a loan and its cost breakdown.
type APRResult struct {
	Scenario       LoanCost
	APR            Percent
	Payment        Money
	TotalFees      Money
	AmountFinanced Money // loan amount less the fees
	TotalInterest  Money
	FinanceCharge  Money // interest and fees
	Iterations     int   // Newton iterations used
}

func (*APRResult) What() CalcType { return CalcAPR }

// Compute returns the APR: the rate at which the level payment of the loan
// repays exactly the amount financed (the loan amount less the fees).
func (s LoanCost) Compute(a Assumptions) (*APRResult, error) {
	if err := validate(s, a); err != nil {
		return nil, err
	}
	n := s.Term.Payments()
	pmt := payment(s.Principal, s.Rate.Monthly(), n)
	financed := s.Principal - s.Fees()

	apr, iterations, err := SolveAPR(financed, pmt, n, s.Rate.Fraction(), a.APRTolerance, a.APRMaxIterations)
	if err != nil {
		return nil, fmt.Errorf("apr of %s: %w", s.Label(), err)
	}

	interest := pmt*float64(n) - s.Principal
	cur := a.Currency
	return &APRResult{
		Scenario:       s,
		APR:            Percent(apr * 100),
		Payment:        M(pmt, cur),
		TotalFees:      M(s.Fees(), cur),
		AmountFinanced: M(financed, cur),
		TotalInterest:  M(interest, cur),
		FinanceCharge:  M(interest+s.Fees(), cur),
		Iterations:     iterations,
	}, nil
}

// SolveAPR finds the annual rate a (as a fraction) such that n monthly
// payments of pmt discounted at a/12 are worth 'financed'.
//
// It runs Newton's method on f(a) = financed - PV(pmt, a/12, n) from 'guess',
// until |f(a)| < tol or maxIter iterations were spent. It fails with
// ErrNoConvergence rather than returning a meaningless rate.
func SolveAPR(financed, pmt float64, n int, guess, tol float64, maxIter int) (apr float64, iterations int, err error) {
	g := guess
	for it := 0; it < maxIter; it++ {
		pv, dpv := annuity(pmt, g/12, n)
		f := financed - pv
		if math.Abs(f) < tol {
			return g, it, nil
		}
		// d/da of -PV(a/12)
		df := -dpv / 12
		if df == 0 || math.IsNaN(df) {
			return 0, it, fmt.Errorf("%w: derivative vanished at %v", ErrNoConvergence, g)
		}
		g -= f / df
		if math.IsNaN(g) || math.IsInf(g, 0) || g <= -12 {
			return 0, it + 1, fmt.Errorf("%w: rate diverged to %v", ErrNoConvergence, g)
		}
	}
	return 0, maxIter, fmt.Errorf("%w: |f| still above %v after %d iterations", ErrNoConvergence, tol, maxIter)
}

// annuity returns the present value of n payments of pmt at the periodic rate
// i, and its derivative with respect to i.
func annuity(pmt, i float64, n int) (pv, dpv float64) {
	fn := float64(n)
	if math.Abs(i) < 1e-9 {
		// first order expansion around 0
		return pmt * (fn - fn*(fn+1)/2*i), -pmt * fn * (fn + 1) / 2
	}
	x := math.Pow(1+i, -fn)
	pv = pmt * (1 - x) / i
	dpv = pmt * (fn*x/(1+i)/i - (1-x)/(i*i))
	return pv, dpv
}
