// Package datetime provides calendar month helpers for the simulation cycle.
package datetime

import (
	"time"

	"github.com/iwvelando/tank-forecast/pkg/constants"
)

// labelLength is the number of characters kept from time.Month.String().
const labelLength = 3

// Months returns the months of one simulation cycle in calendar order.
func Months() []time.Month {
	months := make([]time.Month, 0, constants.MonthsPerYear)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}

// MonthLabel returns the three-letter label of a month, e.g. "Jan".
func MonthLabel(month time.Month) string {
	name := month.String()
	if len(name) < labelLength {
		return name
	}
	return name[:labelLength]
}

// ParseMonthLabel maps a three-letter label back to its month. The match is
// case-sensitive: "Jan" is a month, "jan" and "January" are not.
func ParseMonthLabel(label string) (time.Month, bool) {
	for _, m := range Months() {
		if MonthLabel(m) == label {
			return m, true
		}
	}
	return 0, false
}

// Position returns the 1-indexed calendar position of a month within the cycle.
func Position(month time.Month) int {
	return int(month)
}
