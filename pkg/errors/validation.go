package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDimensions validates real-world length and width for a resource or
// item. Non-positive, NaN, and infinite values are rejected: the grid sizing
// arithmetic (floor of length over precision) is only meaningful for finite
// positive dimensions.
func ValidateDimensions(length, width float64) error {
	if err := validateFinite("length", length); err != nil {
		return err
	}
	return validateFinite("width", width)
}

// ValidatePrecision validates the grid precision of a spatial container.
// Precision is the real-world edge length represented by one occupancy cell
// and must be a finite positive value.
func ValidatePrecision(precision float64) error {
	if math.IsNaN(precision) || math.IsInf(precision, 0) {
		return New(ErrCodeInvalidPrecision, "grid precision must be finite, got %v", precision)
	}
	if precision <= 0 {
		return New(ErrCodeInvalidPrecision, "grid precision must be positive, got %v", precision)
	}
	return nil
}

// ValidateCapacity validates the slot capacity of a quantity container.
func ValidateCapacity(maxItems int) error {
	if maxItems <= 0 {
		return New(ErrCodeInvalidCapacity, "capacity must be positive, got %d", maxItems)
	}
	return nil
}

// ValidateResourceName validates a display name for an item or manifest entry.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateResourceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	return nil
}

// ValidateManifestFilename validates a kitchen manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}

func validateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be finite, got %v", field, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %v", field, v)
	}
	return nil
}
