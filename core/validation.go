package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationResult is the outcome of a single field check. Constructed once
// per check and never mutated.
type ValidationResult struct {
	IsValid      bool
	ErrorMessage string
}

func validResult() ValidationResult {
	return ValidationResult{IsValid: true}
}

func invalidResult(message string) ValidationResult {
	return ValidationResult{ErrorMessage: message}
}

// emailValidator is safe for concurrent use and caches struct metadata, so a
// single package-level instance is shared by all checks.
var emailValidator = validator.New()

// ValidateEmail checks email shape using the validator/v10 RFC-style email
// rule. Validator-specific detail is intentionally collapsed to two fixed
// messages at this boundary.
func ValidateEmail(email string) ValidationResult {
	if strings.TrimSpace(email) == "" {
		return invalidResult("Email is required")
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return invalidResult("Invalid email format")
	}
	return validResult()
}

// ValidateRequiredField checks that a field is present and not blank after
// trimming.
func ValidateRequiredField(value, fieldName string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return invalidResult(fmt.Sprintf("%s is required", fieldName))
	}
	return validResult()
}

// ValidateMaxLength checks that a field does not exceed a character limit.
// Empty values pass; presence is ValidateRequiredField's concern.
func ValidateMaxLength(value, fieldName string, max int) ValidationResult {
	if len([]rune(value)) > max {
		return invalidResult(fmt.Sprintf("%s must be %d characters or fewer", fieldName, max))
	}
	return validResult()
}

// ValidateLatitude accepts nil (the field is optional) or a numeric value in
// [-90, 90]. Non-numeric input is a classified failure, never a panic.
func ValidateLatitude(value any) ValidationResult {
	if value == nil {
		return validResult()
	}
	lat, ok := CoordinateValue(value)
	if !ok {
		return invalidResult("Latitude must be a valid number")
	}
	if lat < -90 || lat > 90 {
		return invalidResult("Latitude must be between -90 and 90 degrees")
	}
	return validResult()
}

// ValidateLongitude accepts nil or a numeric value in [-180, 180].
func ValidateLongitude(value any) ValidationResult {
	if value == nil {
		return validResult()
	}
	lon, ok := CoordinateValue(value)
	if !ok {
		return invalidResult("Longitude must be a valid number")
	}
	if lon < -180 || lon > 180 {
		return invalidResult("Longitude must be between -180 and 180 degrees")
	}
	return validResult()
}

// ValidateCoordinatePair enforces coordinate conjunction: both absent is
// valid, exactly one present fails regardless of the present value's own
// validity, both present falls through to the individual checks.
func ValidateCoordinatePair(latitude, longitude any) ValidationResult {
	if latitude == nil && longitude == nil {
		return validResult()
	}
	if latitude == nil || longitude == nil {
		return invalidResult("Both latitude and longitude must be provided together")
	}
	if result := ValidateLatitude(latitude); !result.IsValid {
		return result
	}
	return ValidateLongitude(longitude)
}

// CoordinateValue extracts a float64 from a decoded JSON value. It reports
// false for anything that is not a number (strings, booleans, slices, maps).
func CoordinateValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
