// Package main is the entry point for The Mines of Tehon.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tehon/internal/game"
	"github.com/samdwyer/tehon/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_TEHON_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()
	cfg := game.ConfigFromEnv()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx,
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Bool("game.audio", cfg.Audio),
	)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		telemetry.Disable()
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	env := telemetry.HoneycombEnv(
		os.Getenv("HONEYCOMB_TEHON_API_KEY"),
		os.Getenv("HONEYCOMB_TEHON_DATASET"),
	)
	for k, v := range env {
		os.Setenv(k, v)
	}
}
