// Package optimizer searches for the smallest tank capacity that avoids any
// deficit over a simulated cycle.
package optimizer

import (
	"errors"
	"fmt"

	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/pkg/constants"
	"github.com/iwvelando/tank-forecast/pkg/optimization"
	"go.uber.org/zap"
)

// ErrCapacityNotFound is returned when no capacity within the search bounds
// avoids every deficit.
var ErrCapacityNotFound = errors.New("no capacity within search bounds avoids a deficit")

// Bounds is the inclusive capacity range searched.
type Bounds struct {
	Low  int
	High int
}

// DefaultBounds returns the search range used when none is configured: from
// the consumption itself up to the default ceiling.
func DefaultBounds(consumption int) Bounds {
	return Bounds{Low: consumption, High: constants.DefaultSearchCeiling}
}

// FindMinimumCapacity returns the smallest capacity c in bounds for which a
// cycle starting full at c never runs short. It returns ErrCapacityNotFound
// when no such capacity exists.
//
// Binary search is valid because a deficit-free capacity stays deficit-free
// when the capacity grows.
func FindMinimumCapacity(schedule forecast.Schedule, consumption int, bounds Bounds) (int, error) {
	capacity, found, _ := search(schedule, consumption, bounds, nil)
	if !found {
		return 0, ErrCapacityNotFound
	}
	return capacity, nil
}

// probeFunc observes each capacity tried by the search.
type probeFunc func(capacity int, result forecast.Result)

func search(schedule forecast.Schedule, consumption int, bounds Bounds, observe probeFunc) (capacity int, found bool, probes int) {
	low, high := bounds.Low, bounds.High
	for low <= high {
		mid := low + (high-low)/2
		result := forecast.Simulate(schedule, consumption, mid, mid)
		probes++
		if observe != nil {
			observe(mid, result)
		}

		if !result.HasDeficit {
			capacity, found = mid, true
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	return capacity, found, probes
}

// Runner performs capacity searches and reports them as summaries.
type Runner struct {
	logger *zap.Logger
	bounds Bounds
}

// NewRunner constructs a Runner searching within the provided bounds.
func NewRunner(logger *zap.Logger, bounds Bounds) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, bounds: bounds}
}

// Bounds returns the range the Runner searches.
func (r *Runner) Bounds() Bounds {
	return r.bounds
}

// Run searches for the minimum capacity of the schedule and consumption.
func (r *Runner) Run(schedule forecast.Schedule, consumption int) optimization.Summary {
	capacity, found, probes := search(schedule, consumption, r.bounds, func(capacity int, result forecast.Result) {
		r.logger.Debug("capacity probe",
			zap.String("op", "optimizer.Run"),
			zap.Int("capacity", capacity),
			zap.Bool("hasDeficit", result.HasDeficit),
			zap.Int("maxDeficit", result.MaxDeficit),
		)
	})

	summary := optimization.Summary{
		Capacity:   capacity,
		Found:      found,
		Probes:     probes,
		SearchLow:  r.bounds.Low,
		SearchHigh: r.bounds.High,
	}
	if !found {
		summary.Capacity = 0
		summary.Notes = append(summary.Notes,
			fmt.Sprintf("unable to avoid a deficit with any capacity from %d to %d", r.bounds.Low, r.bounds.High))
	}

	r.logger.Info("capacity search finished",
		zap.String("op", "optimizer.Run"),
		zap.Int("consumption", consumption),
		zap.Int("searchLow", r.bounds.Low),
		zap.Int("searchHigh", r.bounds.High),
		zap.Int("capacity", summary.Capacity),
		zap.Bool("found", found),
		zap.Int("probes", probes),
	)

	return summary
}
