package errors

import "math"

// CheckPositiveDimension validates that a dimensional parameter is a
// positive finite number not exceeding max. The parameter name appears in
// the error message so callers can surface exactly which input to fix.
func CheckPositiveDimension(name string, v, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %v", name, v)
	}
	if v > max {
		return New(ErrCodeInvalidDimension, "%s must be at most %v, got %v", name, max, v)
	}
	return nil
}

// CheckCount validates that an integer count parameter lies in [min, max].
func CheckCount(name string, v, min, max int) error {
	if v < min {
		return New(ErrCodeInvalidCount, "%s must be at least %d, got %d", name, min, v)
	}
	if v > max {
		return New(ErrCodeInvalidCount, "%s must be at most %d, got %d", name, max, v)
	}
	return nil
}

// CheckExceeds validates that v is strictly greater than floor. Used for
// internally consistent pairs such as ridge height versus eave height,
// where equality is geometrically degenerate.
func CheckExceeds(name string, v float64, floorName string, floor float64) error {
	if v <= floor {
		return New(ErrCodeInvalidDimension, "%s (%v) must exceed %s (%v)", name, v, floorName, floor)
	}
	return nil
}
