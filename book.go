package mortgage

import (
	"errors"
	"fmt"
)

// Book is an ordered list of scenarios, persisted as a JSONL file.
type Book struct {
	scenarios []Scenario
}

// NewBook returns an empty book.
func NewBook() *Book { return &Book{} }

// Append adds scenarios at the end of the book.
func (b *Book) Append(s ...Scenario) { b.scenarios = append(b.scenarios, s...) }

// Len returns the number of scenarios.
func (b *Book) Len() int { return len(b.scenarios) }

// Scenarios returns the scenarios in file order.
func (b *Book) Scenarios() []Scenario { return b.scenarios }

// Find returns the scenarios whose label is name.
func (b *Book) Find(name string) []Scenario {
	var list []Scenario
	for _, s := range b.scenarios {
		if s.Label() == name {
			list = append(list, s)
		}
	}
	return list
}

// Outcome is the evaluation of one scenario of a book.
type Outcome struct {
	Scenario Scenario
	Result   Result // nil if Err is set
	Err      error
}

// MarshalJSON writes {"calc":..., "name":...} followed by either "error" or
// "result".
func (o Outcome) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("calc", o.Scenario.What())
	w.Append("name", o.Scenario.Label())
	if o.Err != nil {
		w.Append("error", o.Err.Error())
		return w.MarshalJSON()
	}
	w.Append("result", o.Result)
	return w.MarshalJSON()
}

// Evaluate computes every scenario of the book. A failing scenario does not
// stop the evaluation; its error is reported in its Outcome and joined in the
// returned error.
func (b *Book) Evaluate(a Assumptions) ([]Outcome, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	outcomes := make([]Outcome, 0, len(b.scenarios))
	var errs []error
	for i, s := range b.scenarios {
		o := Outcome{Scenario: s}
		o.Result, o.Err = s.Evaluate(a)
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("scenario #%d %q: %w", i+1, s.Label(), o.Err))
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, errors.Join(errs...)
}
