// Package constants provides shared constants for the tank-forecast application.
package constants

// Simulation constants
const (
	// MonthsPerYear is the number of months simulated in one cycle
	MonthsPerYear = 12

	// WithdrawalInterval is the spacing in months between withdrawals; a
	// withdrawal happens on every month whose calendar position is a multiple
	// of it.
	WithdrawalInterval = 2

	// DefaultConsumption is the consumption used when the input does not set one
	DefaultConsumption = 2000

	// DefaultInitialVolume is the starting and maximum tank volume used for the
	// deficit identification run when the input does not set one
	DefaultInitialVolume = 2000

	// DefaultSearchCeiling is the largest capacity tried by the capacity search
	DefaultSearchCeiling = 10000

	// MaxInputQuantity bounds the magnitude of any liters value read from input
	MaxInputQuantity = 1_000_000_000
)

// Input file keys, matched case-insensitively.
const (
	// InputKeyConsumption sets the consumption per withdrawal
	InputKeyConsumption = "consumption"

	// InputKeyInitialVolume sets the initial tank volume
	InputKeyInitialVolume = "initial tank volume"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultInputFile is the default input file name
	DefaultInputFile = "input.txt"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides of configuration keys
	EnvPrefix = "TANK_FORECAST"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for input files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Presentation constants
const (
	// NoDeficitMarker is rendered in place of a deficit amount for months without one
	NoDeficitMarker = "—"

	// VolumeUnit is the unit name used in summary lines
	VolumeUnit = "liters"
)
