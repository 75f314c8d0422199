package mortgage

import (
	"math"
	"testing"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// assertNear fails if got is further than tol from want.
func assertNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// assertCents fails if m does not round to want, in cents.
func assertCents(t *testing.T, name string, m Money, want float64) {
	t.Helper()
	if got := m.Round(); !got.Equal(USD(want).Round()) {
		t.Errorf("%s = %v, want %v", name, got, USD(want))
	}
}

// defaults are the assumptions used by every test unless stated otherwise.
var defaults = DefaultAssumptions()
