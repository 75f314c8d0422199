package mortgage

import "fmt"

// Validate checks a scenario and returns an error listing every invalid input.
func Validate(s Scenario) error {
	if s == nil {
		return fmt.Errorf("%w: no scenario", ErrInvalidInput)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s scenario %q: %w", s.What(), s.Label(), err)
	}
	return nil
}
