package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRunPretty(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "consumption: 1000\nMar: 1000\nJul: 1000\nNov: 1000\n")

	var out bytes.Buffer
	err := run([]string{
		"-config", filepath.Join(dir, "missing.yaml"),
		"-input", input,
		"-log-level", "error",
	}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"DEFICIT IDENTIFICATION (2,000 liters):",
		"TEST ITERATION WITH OPTIMAL VOLUME (3,000 liters):",
		"Minimum sufficient volume of the tank: 3,000 liters",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunConfigInputAndFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "refills.txt", "Jun: 1000\n")
	conf := writeFile(t, dir, "config.yaml", `simulation:
  defaultConsumption: 2000
  defaultInitialVolume: 2000
  searchCeiling: 10000
input:
  path: `+input+`
logging:
  level: error
output:
  format: csv
`)

	var out bytes.Buffer
	if err := run([]string{"-config", conf}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 25 {
		t.Fatalf("expected header plus 24 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "run,capacity,month") {
		t.Errorf("unexpected CSV header %q", lines[0])
	}
}

func TestRunJSONOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "consumption: 500\n")

	var out bytes.Buffer
	err := run([]string{
		"-config", filepath.Join(dir, "missing.yaml"),
		"-input", input,
		"-output-format", "json",
		"-log-level", "error",
	}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), `"capacity": 3000`) {
		t.Errorf("expected capacity 3000 in JSON output:\n%s", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "consumption: 1000\n")
	missingConfig := filepath.Join(dir, "missing.yaml")

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "invalid output format",
			args: []string{"-config", missingConfig, "-input", input, "-output-format", "xml"},
		},
		{
			name: "invalid log level",
			args: []string{"-config", missingConfig, "-input", input, "-log-level", "loud"},
		},
		{
			name: "missing input file",
			args: []string{"-config", missingConfig, "-input", filepath.Join(dir, "nope.txt"), "-log-level", "error"},
		},
		{
			name: "unknown flag",
			args: []string{"-bogus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, &out); err == nil {
				t.Errorf("expected error, got output:\n%s", out.String())
			}
		})
	}
}
