// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
)

// ValidateNonNegative returns a warning when a configured quantity is negative.
func ValidateNonNegative(name string, value int) string {
	if value < 0 {
		return fmt.Sprintf("%s is negative (%d)", name, value)
	}
	return ""
}

// ValidateSearchCeiling returns a warning when the capacity search cannot
// start, i.e. the ceiling lies below the consumption used as the lower bound.
func ValidateSearchCeiling(ceiling, consumption int) string {
	if ceiling < consumption {
		return fmt.Sprintf("search ceiling %d is below consumption %d; the capacity search will find nothing",
			ceiling, consumption)
	}
	return ""
}

// ValidateInitialVolume returns a warning when the initial volume exceeds the
// search ceiling, which usually means one of the two is mistyped.
func ValidateInitialVolume(initialVolume, ceiling int) string {
	if initialVolume > ceiling {
		return fmt.Sprintf("initial tank volume %d exceeds search ceiling %d", initialVolume, ceiling)
	}
	return ""
}
