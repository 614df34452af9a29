// Package main is the entry point for the memory flash game.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/memoryflash/internal/game"
	"github.com/samdwyer/memoryflash/internal/logging"
	"github.com/samdwyer/memoryflash/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "memoryflash: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development.
	// Not fatal: env vars might be set directly.
	envErr := godotenv.Load()

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	closeLog, err := logging.Setup(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Warn("telemetry shutdown")
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	return g.Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars
// and reports whether there is anywhere to send traces.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_MEMORYFLASH_API_KEY")
	if apiKey != "" {
		dataset := os.Getenv("HONEYCOMB_MEMORYFLASH_DATASET")
		if dataset == "" {
			dataset = "memoryflash"
		}
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
		return true
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}
