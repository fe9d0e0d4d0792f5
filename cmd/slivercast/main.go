// Package main is the entry point for slivercast.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/slivercast/internal/audio"
	"github.com/samdwyer/slivercast/internal/game"
	"github.com/samdwyer/slivercast/internal/gamedata"
	"github.com/samdwyer/slivercast/internal/input"
	"github.com/samdwyer/slivercast/internal/telemetry"
	"github.com/samdwyer/slivercast/internal/ui"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := gamedata.LoadPresetRegistry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	cfg, err := game.FromEnv(registry)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	keyboard := input.NewKeyboard(screen.Events())
	g := game.New(cfg, screen, keyboard)

	if cfg.Audio {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("Warning: audio unavailable, running silent: %v", err)
		} else {
			defer player.Close()
			g.SetCue(player)
		}
	}

	// The terminal must be restored before any fatal log, or the message is
	// lost in the alternate screen.
	runErr := g.Run(ctx)
	screen.Close()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_SLIVERCAST_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SLIVERCAST_DATASET")
	if dataset == "" {
		dataset = "slivercast"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
