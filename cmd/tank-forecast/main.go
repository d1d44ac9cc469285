package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/tank-forecast/internal/config"
	"github.com/iwvelando/tank-forecast/internal/report"
	"github.com/iwvelando/tank-forecast/pkg/constants"
	"github.com/iwvelando/tank-forecast/pkg/inputprocessor"
	"github.com/iwvelando/tank-forecast/pkg/logging"
	"github.com/iwvelando/tank-forecast/pkg/output"
	"github.com/iwvelando/tank-forecast/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
		os.Exit(1)
	}
}

// run parses the command line, loads configuration and the input file, and
// writes the sizing report to stdout.
func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("tank-forecast", flag.ContinueOnError)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	inputLocation := flags.String("input", "", "path to input file override")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", *configLocation, err)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	inputPath := conf.Input.Path
	if *inputLocation != "" {
		inputPath = *inputLocation
	}
	if inputPath == "" {
		inputPath = constants.DefaultInputFile
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	processor := inputprocessor.NewProcessor(logger)
	input, err := processor.ParseFile(inputPath, conf.Simulation.Defaults())
	if err != nil {
		logger.Error("failed to read input file",
			zap.String("op", "main"),
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return err
	}

	rep := report.Build(logger, input, conf.Simulation.Bounds(input.Consumption))

	switch outputFormat {
	case constants.OutputFormatPretty:
		return output.PrettyFormat(stdout, rep)
	case constants.OutputFormatCSV:
		return output.CsvFormat(stdout, rep)
	case constants.OutputFormatJSON:
		return output.JSONFormat(stdout, rep)
	}

	return nil
}
