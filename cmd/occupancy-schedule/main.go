package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/occupancy-schedule/internal/config"
	"github.com/iwvelando/occupancy-schedule/internal/logging"
	"github.com/iwvelando/occupancy-schedule/internal/schedule"
	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/output"
	"github.com/iwvelando/occupancy-schedule/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, yaml, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Configuration warnings are logged by Build.
	result, err := schedule.Build(ctx, logger, conf)
	if err != nil {
		logger.Fatal("failed to build schedule",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result.Schedule, result.Warnings)
	case constants.OutputFormatCSV:
		output.CsvFormat(result.Schedule)
	case constants.OutputFormatYAML:
		out, err := output.YAMLString(result.Schedule, result.Warnings)
		if err != nil {
			logger.Fatal("failed to render schedule", zap.String("op", "main"), zap.Error(err))
		}
		fmt.Print(out)
	case constants.OutputFormatJSON:
		out, err := output.JSONString(result.Schedule, result.Warnings)
		if err != nil {
			logger.Fatal("failed to render schedule", zap.String("op", "main"), zap.Error(err))
		}
		fmt.Print(out)
	}
}
