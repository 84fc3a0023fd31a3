package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/offerguard/internal/config"
	"github.com/aleister1102/offerguard/internal/logger"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/orchestrator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// maxInputSize caps how much of the input file is read.
const maxInputSize = 10 * 1024 * 1024

func main() {
	flags := ParseFlags()

	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		bootLogger.Fatal().Err(err).Str("path", flags.GlobalConfigFile).Msg("Could not load global config")
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	appLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Could not initialize logger")
	}
	defer func() {
		_ = appLogger.Close()
	}()
	zLogger := *appLogger.GetZerolog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	services, err := orchestrator.NewServices(gCfg, zLogger, registry)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize services")
		os.Exit(1)
	}

	result, err := run(ctx, services, flags)
	if err != nil {
		zLogger.Error().Err(err).Str("mode", flags.Mode).Msg("Run failed")
		os.Exit(1)
	}

	if flags.MetricsOut != "" {
		if err := writeMetrics(flags.MetricsOut, registry); err != nil {
			zLogger.Error().Err(err).Str("path", flags.MetricsOut).Msg("Failed to write metrics")
			os.Exit(1)
		}
		zLogger.Debug().Str("path", flags.MetricsOut).Msg("Metrics written")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		zLogger.Error().Err(err).Msg("Failed to write result")
		os.Exit(1)
	}
}

func run(ctx context.Context, services *orchestrator.Services, flags AppFlags) (any, error) {
	switch flags.Mode {
	case modeParse:
		input, err := readInput(flags.InputFile)
		if err != nil {
			return nil, err
		}
		return services.Parse(string(input)), nil

	case modeAnalyze:
		input, err := readInput(flags.InputFile)
		if err != nil {
			return nil, err
		}
		services.Warm(ctx)
		return services.Analyze(ctx, submissionFromInput(input)), nil

	case modeVerify:
		services.Warm(ctx)
		return services.VerifyCompany(ctx, flags.Company, flags.Website), nil

	case modeURL:
		return services.ExtractURLFeatures(flags.URL), nil

	case modeWebsite:
		website, err := services.FindOfficialWebsite(ctx, flags.Company)
		if err != nil {
			return nil, err
		}
		return map[string]string{"companyName": flags.Company, "companyWebsite": website}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", flags.Mode)
}

// writeMetrics dumps everything gathered from g in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func writeMetrics(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// submissionFromInput accepts a submission JSON object or plain posting text.
func submissionFromInput(input []byte) models.Submission {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var sub models.Submission
		if err := json.Unmarshal(trimmed, &sub); err == nil {
			return sub
		}
	}
	return models.Submission{RawText: string(input)}
}
