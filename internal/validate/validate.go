package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule describes the constraints on a single form field. Zero values mean a
// constraint is not applied, except Min/Max which use nil for "unbounded".
type Rule struct {
	Label    string
	Value    string
	Required bool
	MinRunes int
	MaxRunes int
	Numeric  bool
	Min      *float64
	Max      *float64
}

// Check runs every rule in order and returns the first violation, so a form
// can surface one actionable message at a time. A nil error means all rules
// passed.
func Check(rules []Rule) error {
	for _, r := range rules {
		if err := r.check(); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) check() error {
	v := strings.TrimSpace(r.Value)
	if v == "" {
		if r.Required {
			return fmt.Errorf("%s is required", r.Label)
		}
		return nil
	}
	if n := utf8.RuneCountInString(v); r.MinRunes > 0 && n < r.MinRunes {
		return fmt.Errorf("%s must be at least %d characters", r.Label, r.MinRunes)
	}
	if n := utf8.RuneCountInString(v); r.MaxRunes > 0 && n > r.MaxRunes {
		return fmt.Errorf("%s must be at most %d characters", r.Label, r.MaxRunes)
	}
	if !r.Numeric {
		return nil
	}
	// ParseFloat accepts spellings like "NaN" and "Inf"; NaN also compares
	// false against both bounds. None of them is a usable quantity.
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%s must be a number", r.Label)
	}
	if r.Min != nil && f < *r.Min {
		return fmt.Errorf("%s must be at least %s", r.Label, strconv.FormatFloat(*r.Min, 'f', -1, 64))
	}
	if r.Max != nil && f > *r.Max {
		return fmt.Errorf("%s must be at most %s", r.Label, strconv.FormatFloat(*r.Max, 'f', -1, 64))
	}
	return nil
}

// Float is a convenience for building Min/Max bounds inline.
func Float(f float64) *float64 {
	return &f
}
