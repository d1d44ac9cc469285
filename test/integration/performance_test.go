package integration

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/iwvelando/tank-forecast/internal/forecast"
	"github.com/iwvelando/tank-forecast/internal/optimizer"
	"github.com/iwvelando/tank-forecast/pkg/testutil"
)

// TestRunner is a simple test runner for debugging
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	start := time.Now()
	rep := loadReport(t)
	total := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Probes: %d", rep.Optimization.Probes)
	t.Logf("  Total time: %v", total)

	if total > 2*time.Second {
		t.Errorf("Total processing time %v exceeds 2 second threshold", total)
	}

	// A binary search over [1000, 10000] needs at most 14 probes.
	if rep.Optimization.Probes > 14 {
		t.Errorf("expected at most 14 probes, got %d", rep.Optimization.Probes)
	}
}

// TestDataConsistency validates that multiple runs produce identical results
func TestDataConsistency(t *testing.T) {
	first := loadReport(t)

	for run := 1; run < 3; run++ {
		rep := loadReport(t)
		if rep.RunID == first.RunID {
			t.Errorf("run %d reused run ID %s", run, rep.RunID)
		}
		if !reflect.DeepEqual(rep.DeficitRun, first.DeficitRun) {
			t.Errorf("run %d: deficit run differs", run)
		}
		if !reflect.DeepEqual(rep.VerificationRun, first.VerificationRun) {
			t.Errorf("run %d: verification run differs", run)
		}
		if !reflect.DeepEqual(rep.Optimization, first.Optimization) {
			t.Errorf("run %d: optimization differs: %+v vs %+v", run, rep.Optimization, first.Optimization)
		}
	}
}

func BenchmarkSimulate(b *testing.B) {
	input := testutil.QuarterlyRefillInput()
	for i := 0; i < b.N; i++ {
		_ = forecast.Simulate(input.Schedule, input.Consumption, input.InitialVolume, input.InitialVolume)
	}
}

func BenchmarkFindMinimumCapacity(b *testing.B) {
	input := testutil.QuarterlyRefillInput()
	bounds := optimizer.DefaultBounds(input.Consumption)
	for i := 0; i < b.N; i++ {
		_, _ = optimizer.FindMinimumCapacity(input.Schedule, input.Consumption, bounds)
	}
}
