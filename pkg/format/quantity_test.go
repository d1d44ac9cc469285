package format

import (
	"testing"

	"github.com/iwvelando/tank-forecast/internal/forecast"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{input: 0, expected: "0"},
		{input: 999, expected: "999"},
		{input: 1000, expected: "1,000"},
		{input: 10000, expected: "10,000"},
		{input: 1234567, expected: "1,234,567"},
		{input: -12000, expected: "-12,000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := Quantity(tt.input); got != tt.expected {
				t.Errorf("Quantity(%d) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestVolume(t *testing.T) {
	if got := Volume(10000); got != "10,000 liters" {
		t.Errorf("Volume(10000) = %q, expected %q", got, "10,000 liters")
	}
}

func TestDeficit(t *testing.T) {
	if got := Deficit(forecast.NoDeficit()); got != "—" {
		t.Errorf("Deficit(none) = %q, expected dash", got)
	}
	if got := Deficit(forecast.Shortfall(2000)); got != "-2000" {
		t.Errorf("Deficit(2000) = %q, expected -2000", got)
	}
}
