// Package inputprocessor parses the line-oriented refill schedule input.
//
// Each non-blank line holds a "key: value" pair. Everything after a '#' is a
// comment. The keys "consumption" and "initial tank volume" are matched
// case-insensitively; any other key must be a three-letter month label such as
// "Jan" and is matched case-sensitively. Lines that cannot be understood are
// skipped rather than rejected.
package inputprocessor

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/pkg/constants"
	"github.com/iwvelando/tank-forecast/pkg/datetime"
	"go.uber.org/zap"
)

var (
	errNotInteger = errors.New("not an integer")
	errOutOfRange = errors.New("integer out of range")

	lineSeparator = regexp.MustCompile(`\r?\n`)
	leadingInt    = regexp.MustCompile(`^[+-]?[0-9]+`)
)

// Skip reasons recorded for lines that were ignored.
const (
	ReasonMissingSeparator = "missing key or value"
	ReasonInvalidNumber    = "value is not an integer"
	ReasonOutOfRange       = "value out of range"
	ReasonUnknownKey       = "unknown key"
)

// Defaults holds the values used for keys absent from the input.
type Defaults struct {
	Consumption   int
	InitialVolume int
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Consumption:   constants.DefaultConsumption,
		InitialVolume: constants.DefaultInitialVolume,
	}
}

// SkippedLine describes an input line that was ignored.
type SkippedLine struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Input is the parsed content of an input file.
type Input struct {
	Schedule      forecast.Schedule
	Consumption   int
	InitialVolume int
	Skipped       []SkippedLine
}

// Warnings lists values that parse but are unlikely to be intended. They are
// reported only; the simulation runs with them unchanged.
func (in Input) Warnings() []string {
	var warnings []string
	if in.Consumption < 0 {
		warnings = append(warnings, fmt.Sprintf("consumption is negative (%d)", in.Consumption))
	}
	if in.InitialVolume < 0 {
		warnings = append(warnings, fmt.Sprintf("initial tank volume is negative (%d)", in.InitialVolume))
	}
	for _, month := range datetime.Months() {
		if liters, ok := in.Schedule[month]; ok && liters < 0 {
			warnings = append(warnings, fmt.Sprintf("refill for %s is negative (%d)", datetime.MonthLabel(month), liters))
		}
	}
	return warnings
}

// Processor parses input text.
type Processor struct {
	logger *zap.Logger
}

// NewProcessor creates a new input processor with the given logger.
// If logger is nil, it will use a no-op logger.
func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger}
}

// ParseFile reads and parses the input file at path.
func (p *Processor) ParseFile(path string, defaults Defaults) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return p.ParseText(string(data), defaults), nil
}

// ParseText parses input text. Later lines override earlier ones for the same
// key.
func (p *Processor) ParseText(text string, defaults Defaults) Input {
	input := Input{
		Schedule:      forecast.Schedule{},
		Consumption:   defaults.Consumption,
		InitialVolume: defaults.InitialVolume,
	}

	for i, line := range lineSeparator.Split(text, -1) {
		clean := strings.TrimSpace(strings.SplitN(line, "#", 2)[0])
		if clean == "" {
			continue
		}

		skip := func(reason string) {
			input.Skipped = append(input.Skipped, SkippedLine{Line: i + 1, Text: clean, Reason: reason})
			p.logger.Debug("skipping input line",
				zap.String("op", "inputprocessor.ParseText"),
				zap.Int("line", i+1),
				zap.String("text", clean),
				zap.String("reason", reason),
			)
		}

		fields := strings.Split(clean, ":")
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			skip(ReasonMissingSeparator)
			continue
		}
		keyRaw := strings.TrimSpace(fields[0])

		value, err := parseLeadingInt(fields[1])
		if errors.Is(err, errOutOfRange) {
			skip(ReasonOutOfRange)
			continue
		}
		if err != nil {
			skip(ReasonInvalidNumber)
			continue
		}

		switch strings.ToLower(keyRaw) {
		case constants.InputKeyConsumption:
			input.Consumption = value
		case constants.InputKeyInitialVolume:
			input.InitialVolume = value
		default:
			month, isMonth := datetime.ParseMonthLabel(keyRaw)
			if !isMonth {
				skip(ReasonUnknownKey)
				continue
			}
			input.Schedule[month] = value
		}
	}

	return input
}

// parseLeadingInt reads an optionally signed integer at the start of s after
// trimming whitespace; trailing characters are ignored, so "12.5" yields 12.
// Values beyond ±MaxInputQuantity are rejected with errOutOfRange.
func parseLeadingInt(s string) (int, error) {
	match := leadingInt.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, errNotInteger
	}
	value, err := strconv.Atoi(match)
	if errors.Is(err, strconv.ErrRange) {
		return 0, errOutOfRange
	}
	if err != nil {
		return 0, errNotInteger
	}
	if value > constants.MaxInputQuantity || value < -constants.MaxInputQuantity {
		return 0, errOutOfRange
	}
	return value, nil
}

// ScheduledMonths returns the months with an explicit refill entry in calendar
// order.
func (in Input) ScheduledMonths() []time.Month {
	var months []time.Month
	for _, month := range datetime.Months() {
		if _, ok := in.Schedule[month]; ok {
			months = append(months, month)
		}
	}
	return months
}
