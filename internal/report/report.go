// Package report runs the full sizing flow for one input: the deficit
// identification run, the capacity search and the verification run.
package report

import (
	"github.com/google/uuid"
	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/internal/optimizer"
	"github.com/iwvelando/tank-forecast/pkg/inputprocessor"
	"github.com/iwvelando/tank-forecast/pkg/optimization"
	"go.uber.org/zap"
)

// Report holds everything a renderer needs for one input. Its input schedule
// is a private copy, so later changes to the caller's schedule do not leak in.
type Report struct {
	RunID                string
	Input                inputprocessor.Input
	InitialCapacity      int
	DeficitRun           forecast.Result
	Optimization         optimization.Summary
	VerificationCapacity int
	VerificationRun      forecast.Result
}

// Build simulates the input at its initial tank volume, searches for the
// minimum deficit-free capacity within bounds and simulates again at that
// capacity. When no capacity qualifies the verification run uses bounds.High
// and the optimization summary says so.
func Build(logger *zap.Logger, input inputprocessor.Input, bounds optimizer.Bounds) Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	input.Schedule = input.Schedule.Clone()
	r := Report{
		RunID:           uuid.NewString(),
		Input:           input,
		InitialCapacity: input.InitialVolume,
	}
	logger = logger.With(zap.String("runID", r.RunID))

	for _, warning := range input.Warnings() {
		logger.Warn("input warning: "+warning,
			zap.String("op", "report.Build"),
		)
	}

	r.DeficitRun = forecast.Simulate(input.Schedule, input.Consumption, input.InitialVolume, input.InitialVolume)

	runner := optimizer.NewRunner(logger, bounds)
	r.Optimization = runner.Run(input.Schedule, input.Consumption)

	r.VerificationCapacity = r.Optimization.Capacity
	if !r.Optimization.Found {
		r.VerificationCapacity = runner.Bounds().High
		r.Optimization.Notes = append(r.Optimization.Notes,
			"verification run uses the search ceiling")
	}
	r.VerificationRun = forecast.Simulate(input.Schedule, input.Consumption, r.VerificationCapacity, r.VerificationCapacity)

	logger.Info("report built",
		zap.String("op", "report.Build"),
		zap.Int("scheduledMonths", len(input.ScheduledMonths())),
		zap.Int("skippedLines", len(input.Skipped)),
		zap.Int("consumption", input.Consumption),
		zap.Int("initialCapacity", r.InitialCapacity),
		zap.Bool("initialHasDeficit", r.DeficitRun.HasDeficit),
		zap.Int("initialMaxDeficit", r.DeficitRun.MaxDeficit),
		zap.Bool("capacityFound", r.Optimization.Found),
		zap.Int("verificationCapacity", r.VerificationCapacity),
	)

	return r
}
