package mortgage

import "math"

// zeroRate is the monthly rate below which the annuity formulas are replaced
// by their limit. (1+r)^n - 1 loses all its digits around there.
const zeroRate = 1e-12

// Payment returns the level monthly payment that repays principal over term
// at the annual rate.
//
//	P = L * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate is repaid in n equal installments.
func Payment(principal float64, rate Percent, term Term) (float64, error) {
	var c checks
	c.positive("principal", principal)
	c.rate("rate", rate)
	c.term("term", term)
	if err := c.err(); err != nil {
		return 0, err
	}
	return payment(principal, rate.Monthly(), term.Payments()), nil
}

// PresentValue returns the principal that a level monthly payment repays over
// term at the annual rate. It is the inverse of Payment.
func PresentValue(pmt float64, rate Percent, term Term) (float64, error) {
	var c checks
	c.nonNegative("payment", pmt)
	c.rate("rate", rate)
	c.term("term", term)
	if err := c.err(); err != nil {
		return 0, err
	}
	return presentValue(pmt, rate.Monthly(), term.Payments()), nil
}

// payment is Payment without validation, r is the monthly rate.
func payment(principal, r float64, n int) float64 {
	if math.Abs(r) < zeroRate {
		return principal / float64(n)
	}
	g := math.Pow(1+r, float64(n))
	return principal * r * g / (g - 1)
}

// presentValue is PresentValue without validation, r is the monthly rate.
func presentValue(pmt, r float64, n int) float64 {
	if math.Abs(r) < zeroRate {
		return pmt * float64(n)
	}
	return pmt * (1 - math.Pow(1+r, -float64(n))) / r
}
