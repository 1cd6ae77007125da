package validation

import (
	"strconv"
	"time"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return ggerrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateAtLeast validates that an integer value is at least min.
// Returns a ValidationError if the value is below the minimum.
func ValidateAtLeast(module, field string, value, min int) error {
	if value < min {
		return ggerrors.NewValidationError(module, field, value, "below minimum").
			WithHint("value must be >= " + strconv.Itoa(min))
	}
	return nil
}

// ValidateNonNegativeDuration validates that a duration is non-negative.
// Returns a ValidationError if the duration is negative.
func ValidateNonNegativeDuration(module, field string, value time.Duration) error {
	if value < 0 {
		return ggerrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 to disable or a positive duration")
	}
	return nil
}

// ValidateNotNil validates that an interface value is not nil.
// Returns a ValidationError if the value is nil.
func ValidateNotNil(module, field string, value interface{}) error {
	if value == nil {
		return ggerrors.NewValidationError(module, field, nil, "cannot be nil").
			WithHint("provide a valid " + field)
	}
	return nil
}
