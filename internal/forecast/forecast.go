// Package forecast defines the data structures related to a simulated tank
// cycle and includes the month-by-month simulation.
package forecast

import (
	"math"
	"time"

	"github.com/iwvelando/tank-forecast/pkg/constants"
	"github.com/iwvelando/tank-forecast/pkg/datetime"
)

// Schedule maps a month to the liters refilled during it. Months absent from
// the schedule receive nothing.
type Schedule map[time.Month]int

// Refill returns the liters scheduled for the given month.
func (s Schedule) Refill(month time.Month) int {
	return s[month]
}

// Clone returns an independent copy of the schedule.
func (s Schedule) Clone() Schedule {
	clone := make(Schedule, len(s))
	for month, liters := range s {
		clone[month] = liters
	}
	return clone
}

// Deficit is the shortfall of a withdrawal. Valid is false for months where
// the withdrawal was fully covered or no withdrawal was attempted.
type Deficit struct {
	Amount int
	Valid  bool
}

// NoDeficit returns the empty Deficit.
func NoDeficit() Deficit {
	return Deficit{}
}

// Shortfall returns a Deficit of the given amount.
func Shortfall(amount int) Deficit {
	return Deficit{Amount: amount, Valid: true}
}

// MonthRecord holds the tank movements of one simulated month.
type MonthRecord struct {
	Month     time.Month
	Begin     int
	Withdrawn int
	Received  int
	End       int
	Deficit   Deficit
}

// Result holds all information related to one simulated cycle.
type Result struct {
	Records       []MonthRecord
	FinalVolume   int
	MaxDeficit    int
	TotalDeficit  int
	DeficitMonths int
	HasDeficit    bool
}

// IsWithdrawalMonth reports whether consumption is withdrawn in the month.
func IsWithdrawalMonth(month time.Month) bool {
	return datetime.Position(month)%constants.WithdrawalInterval == 0
}

// tankState is the accumulator folded over the months of a cycle.
type tankState struct {
	volume        int
	maxDeficit    int
	totalDeficit  int
	deficitMonths int
}

// Simulate runs one cycle. Each month first withdraws consumption (even
// months only), then adds the scheduled refill and caps the volume at
// maxCapacity; any excess is discarded.
func Simulate(schedule Schedule, consumption, startingVolume, maxCapacity int) Result {
	state := tankState{volume: startingVolume}
	records := make([]MonthRecord, 0, constants.MonthsPerYear)

	for _, month := range datetime.Months() {
		var record MonthRecord
		state, record = state.advance(month, schedule.Refill(month), consumption, maxCapacity)
		records = append(records, record)
	}

	return Result{
		Records:       records,
		FinalVolume:   state.volume,
		MaxDeficit:    state.maxDeficit,
		TotalDeficit:  state.totalDeficit,
		DeficitMonths: state.deficitMonths,
		HasDeficit:    state.deficitMonths > 0,
	}
}

func (s tankState) advance(month time.Month, received, consumption, maxCapacity int) (tankState, MonthRecord) {
	next := s
	record := MonthRecord{
		Month:    month,
		Begin:    s.volume,
		Received: received,
		Deficit:  NoDeficit(),
	}

	if IsWithdrawalMonth(month) {
		if next.volume >= consumption {
			record.Withdrawn = consumption
			next.volume = subSaturating(next.volume, consumption)
		} else {
			shortfall := subSaturating(consumption, next.volume)
			record.Withdrawn = next.volume
			record.Deficit = Shortfall(shortfall)
			next.volume = 0
			next.maxDeficit = max(next.maxDeficit, shortfall)
			next.totalDeficit = addSaturating(next.totalDeficit, shortfall)
			next.deficitMonths++
		}
	}

	next.volume = min(addSaturating(next.volume, received), maxCapacity)
	record.End = next.volume
	return next, record
}

// addSaturating returns a+b clamped to the int range.
func addSaturating(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// subSaturating returns a-b clamped to the int range.
func subSaturating(a, b int) int {
	if b < 0 && a > math.MaxInt+b {
		return math.MaxInt
	}
	if b > 0 && a < math.MinInt+b {
		return math.MinInt
	}
	return a - b
}
