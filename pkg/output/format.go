// Package output provides utilities for formatting and displaying simulation reports.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/internal/report"
	"github.com/iwvelando/tank-forecast/pkg/datetime"
	"github.com/iwvelando/tank-forecast/pkg/format"
	"github.com/olekukonko/tablewriter"
)

// Table column headers.
var tableHeader = []string{"Month", "Beginning", "Discharge", "Inlet", "End", "Deficit"}

const (
	deficitTitle      = "DEFICIT IDENTIFICATION"
	verificationTitle = "TEST ITERATION WITH OPTIMAL VOLUME"
)

// PrettyFormat outputs a human-readable report with one table per run. The
// report is rendered in memory and written to w in a single call.
func PrettyFormat(w io.Writer, r report.Report) error {
	var buf bytes.Buffer
	writePretty(&buf, r)
	_, err := w.Write(buf.Bytes())
	return err
}

func writePretty(w io.Writer, r report.Report) {
	fmt.Fprintf(w, "\n%s (%s):\n", deficitTitle, format.Volume(r.InitialCapacity))
	writeTable(w, r.DeficitRun.Records)
	if r.DeficitRun.HasDeficit {
		fmt.Fprintf(w, "Largest deficit: %s over %d month(s), %s short in total.\n",
			format.Volume(r.DeficitRun.MaxDeficit), r.DeficitRun.DeficitMonths, format.Volume(r.DeficitRun.TotalDeficit))
	} else {
		fmt.Fprintf(w, "No deficit with a tank of %s.\n", format.Volume(r.InitialCapacity))
	}
	fmt.Fprintln(w, "Note: withdrawal occurs before topping up.")
	fmt.Fprintln(w, "Note: optimal volume is determined by the binary search method.")

	fmt.Fprintf(w, "\n%s (%s):\n", verificationTitle, format.Volume(r.VerificationCapacity))
	writeTable(w, r.VerificationRun.Records)

	if !r.Optimization.Found {
		fmt.Fprintf(w, "\nEven with the maximum tank volume (%s), it is impossible to avoid a deficit.\n",
			format.Volume(r.Optimization.SearchHigh))
		fmt.Fprintln(w, "Manual refilling will be required.")
		return
	}
	fmt.Fprintf(w, "Minimum sufficient volume of the tank: %s\n", format.Volume(r.Optimization.Capacity))
}

func writeTable(w io.Writer, records []forecast.MonthRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, record := range records {
		table.Append([]string{
			datetime.MonthLabel(record.Month),
			strconv.Itoa(record.Begin),
			strconv.Itoa(record.Withdrawn),
			strconv.Itoa(record.Received),
			strconv.Itoa(record.End),
			format.Deficit(record.Deficit),
		})
	}
	table.Render()
}

// CsvFormat outputs both runs in comma-separated value format, one row per
// month. The deficit column is empty for months without a shortfall.
func CsvFormat(w io.Writer, r report.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"run", "capacity", "month", "beginning", "discharge", "inlet", "end", "deficit"}); err != nil {
		return err
	}

	runs := []struct {
		name     string
		capacity int
		result   forecast.Result
	}{
		{name: "deficit", capacity: r.InitialCapacity, result: r.DeficitRun},
		{name: "verification", capacity: r.VerificationCapacity, result: r.VerificationRun},
	}
	for _, run := range runs {
		for _, record := range run.result.Records {
			deficit := ""
			if record.Deficit.Valid {
				deficit = strconv.Itoa(record.Deficit.Amount)
			}
			row := []string{
				run.name,
				strconv.Itoa(run.capacity),
				datetime.MonthLabel(record.Month),
				strconv.Itoa(record.Begin),
				strconv.Itoa(record.Withdrawn),
				strconv.Itoa(record.Received),
				strconv.Itoa(record.End),
				deficit,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// JSONFormat outputs the report document as indented JSON.
func JSONFormat(w io.Writer, r report.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(r))
}
