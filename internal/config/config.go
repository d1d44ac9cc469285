// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/iwvelando/tank-forecast/internal/optimizer"
	"github.com/iwvelando/tank-forecast/pkg/constants"
	"github.com/iwvelando/tank-forecast/pkg/inputprocessor"
	"github.com/iwvelando/tank-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for tank-forecast.
type Configuration struct {
	Simulation SimulationConfig `yaml:"simulation,omitempty"`
	Input      InputConfig      `yaml:"input,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// SimulationConfig holds the values used when the input file leaves them out,
// and the upper bound of the capacity search.
type SimulationConfig struct {
	DefaultConsumption   int `yaml:"defaultConsumption"`
	DefaultInitialVolume int `yaml:"defaultInitialVolume"`
	SearchCeiling        int `yaml:"searchCeiling"`
}

// InputConfig holds the location of the refill schedule input.
type InputConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// DefaultSimulationConfig returns the built-in simulation settings.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		DefaultConsumption:   constants.DefaultConsumption,
		DefaultInitialVolume: constants.DefaultInitialVolume,
		SearchCeiling:        constants.DefaultSearchCeiling,
	}
}

// Defaults returns the parser defaults for keys absent from the input.
func (s SimulationConfig) Defaults() inputprocessor.Defaults {
	return inputprocessor.Defaults{
		Consumption:   s.DefaultConsumption,
		InitialVolume: s.DefaultInitialVolume,
	}
}

// Bounds returns the capacity search range for the given consumption.
func (s SimulationConfig) Bounds(consumption int) optimizer.Bounds {
	bounds := optimizer.DefaultBounds(consumption)
	bounds.High = s.SearchCeiling
	return bounds
}

func setDefaults(v *viper.Viper) {
	sim := DefaultSimulationConfig()
	v.SetDefault("simulation.defaultConsumption", sim.DefaultConsumption)
	v.SetDefault("simulation.defaultInitialVolume", sim.DefaultInitialVolume)
	v.SetDefault("simulation.searchCeiling", sim.SearchCeiling)
	v.SetDefault("input.path", constants.DefaultInputFile)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults. Every key can be
// overridden from the environment, e.g. TANK_FORECAST_SIMULATION_SEARCHCEILING.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")

		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	add := func(warning string) {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	sim := c.Simulation
	add(validation.ValidateNonNegative("simulation.defaultConsumption", sim.DefaultConsumption))
	add(validation.ValidateNonNegative("simulation.defaultInitialVolume", sim.DefaultInitialVolume))
	add(validation.ValidateNonNegative("simulation.searchCeiling", sim.SearchCeiling))
	add(validation.ValidateSearchCeiling(sim.SearchCeiling, sim.DefaultConsumption))
	add(validation.ValidateInitialVolume(sim.DefaultInitialVolume, sim.SearchCeiling))

	if c.Input.Path == "" {
		add("input.path is empty")
	}

	return warnings
}
