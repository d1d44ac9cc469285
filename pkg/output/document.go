package output

import (
	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/internal/report"
	"github.com/iwvelando/tank-forecast/pkg/datetime"
	"github.com/iwvelando/tank-forecast/pkg/inputprocessor"
	"github.com/iwvelando/tank-forecast/pkg/optimization"
)

// Document is the serializable form of a report.
type Document struct {
	RunID                string                       `json:"runId"`
	Consumption          int                          `json:"consumption"`
	Schedule             map[string]int               `json:"schedule"`
	Skipped              []inputprocessor.SkippedLine `json:"skipped,omitempty"`
	Warnings             []string                     `json:"warnings,omitempty"`
	InitialCapacity      int                          `json:"initialCapacity"`
	DeficitRun           RunDocument                  `json:"deficitRun"`
	Optimization         optimization.Summary         `json:"optimization"`
	VerificationCapacity int                          `json:"verificationCapacity"`
	VerificationRun      RunDocument                  `json:"verificationRun"`
}

// RunDocument is one simulated cycle.
type RunDocument struct {
	Capacity      int           `json:"capacity"`
	Rows          []RowDocument `json:"rows"`
	FinalVolume   int           `json:"finalVolume"`
	MaxDeficit    int           `json:"maxDeficit"`
	TotalDeficit  int           `json:"totalDeficit"`
	DeficitMonths int           `json:"deficitMonths"`
	HasDeficit    bool          `json:"hasDeficit"`
}

// RowDocument is one month of a cycle. Deficit is omitted for months without
// a shortfall.
type RowDocument struct {
	Month     string `json:"month"`
	Beginning int    `json:"beginning"`
	Discharge int    `json:"discharge"`
	Inlet     int    `json:"inlet"`
	End       int    `json:"end"`
	Deficit   *int   `json:"deficit,omitempty"`
}

// NewDocument converts a report into its serializable form.
func NewDocument(r report.Report) Document {
	schedule := make(map[string]int, len(r.Input.Schedule))
	for month, liters := range r.Input.Schedule {
		schedule[datetime.MonthLabel(month)] = liters
	}

	return Document{
		RunID:                r.RunID,
		Consumption:          r.Input.Consumption,
		Schedule:             schedule,
		Skipped:              r.Input.Skipped,
		Warnings:             r.Input.Warnings(),
		InitialCapacity:      r.InitialCapacity,
		DeficitRun:           newRunDocument(r.InitialCapacity, r.DeficitRun),
		Optimization:         r.Optimization,
		VerificationCapacity: r.VerificationCapacity,
		VerificationRun:      newRunDocument(r.VerificationCapacity, r.VerificationRun),
	}
}

func newRunDocument(capacity int, result forecast.Result) RunDocument {
	rows := make([]RowDocument, 0, len(result.Records))
	for _, record := range result.Records {
		row := RowDocument{
			Month:     datetime.MonthLabel(record.Month),
			Beginning: record.Begin,
			Discharge: record.Withdrawn,
			Inlet:     record.Received,
			End:       record.End,
		}
		if record.Deficit.Valid {
			amount := record.Deficit.Amount
			row.Deficit = &amount
		}
		rows = append(rows, row)
	}

	return RunDocument{
		Capacity:      capacity,
		Rows:          rows,
		FinalVolume:   result.FinalVolume,
		MaxDeficit:    result.MaxDeficit,
		TotalDeficit:  result.TotalDeficit,
		DeficitMonths: result.DeficitMonths,
		HasDeficit:    result.HasDeficit,
	}
}
