// Package format renders simulation values for display.
package format

import (
	"strconv"

	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Quantity returns an integer with thousands separators (e.g., "-12,000").
func Quantity(liters int) string {
	return printer.Sprintf("%d", liters)
}

// Volume returns a quantity followed by its unit (e.g., "10,000 liters").
func Volume(liters int) string {
	return Quantity(liters) + " " + constants.VolumeUnit
}

// Deficit returns the table cell for a deficit: the shortfall as a negative
// number, or a dash when there was none.
func Deficit(d forecast.Deficit) string {
	if !d.Valid {
		return constants.NoDeficitMarker
	}
	return "-" + strconv.Itoa(d.Amount)
}
