// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/pkg/inputprocessor"
)

// FindRecord finds the record of a month in a simulation result.
// Returns a pointer to the record if found, nil otherwise.
func FindRecord(result forecast.Result, month time.Month) *forecast.MonthRecord {
	for i := range result.Records {
		if result.Records[i].Month == month {
			return &result.Records[i]
		}
	}
	return nil
}

// JuneRefillInput returns the input used as a regression fixture: a single
// June refill of 1000 liters against a consumption of 2000, which no capacity
// up to the default ceiling can cover.
func JuneRefillInput() inputprocessor.Input {
	return inputprocessor.Input{
		Schedule:      forecast.Schedule{time.June: 1000},
		Consumption:   2000,
		InitialVolume: 2000,
	}
}

// QuarterlyRefillInput returns an input whose minimum capacity is 3000 liters.
func QuarterlyRefillInput() inputprocessor.Input {
	return inputprocessor.Input{
		Schedule:      forecast.Schedule{time.March: 1000, time.July: 1000, time.November: 1000},
		Consumption:   1000,
		InitialVolume: 2000,
	}
}
