// Package main provides the entry point for the fade brightness daemon.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/config"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/events"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/gamma"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/overlay"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/server"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/watcher"
)

// shutdownTimeout bounds the HTTP server drain on exit.
const shutdownTimeout = 5 * time.Second

var (
	verbose    bool
	configFile string
	listenAddr string
	rootCmd    = &cobra.Command{
		Use:   "fade-brightness-daemon",
		Short: "Daemon for controlling display brightness on Windows",
		Long: `fade-brightness-daemon controls the brightness of every attached
display through a single normalized 0-100 scale, regardless of whether the
panel is an internal one driven by firmware or an external monitor speaking
DDC/CI.

Values below zero dim past the hardware floor using a translucent black
overlay window per monitor. Monitor state is served over a local HTTP API
and streamed to WebSocket clients as it changes.`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (overrides config)")
}

func run() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Msg("Starting fade-brightness-daemon")

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}

	// The overlay loop owns its windows and message pump on a dedicated OS
	// thread; everything else reaches it through the command channel.
	overlayLoop := overlay.New(cfg.OverlayQueueSize)
	go func() {
		if err := overlayLoop.Run(); err != nil {
			log.Error().Err(err).Msg("Overlay loop failed (sub-zero dimming disabled)")
		}
	}()

	manager := display.NewManager(display.WithOverlayChannel(overlayLoop.Commands()))
	if _, err := manager.Reconcile(); err != nil {
		log.Error().Err(err).Msg("Failed to enumerate displays")
	}

	displayCount := manager.Count()
	if displayCount == 0 {
		log.Warn().Msg("No displays found")
	} else {
		log.Info().Int("count", displayCount).Msg("Found displays")
	}

	emitter := events.NewEmitter()

	srv := server.New(manager, emitter, cfg.Listen)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(manager, emitter,
		watcher.WithTopologyInterval(cfg.TopologyInterval),
		watcher.WithBrightnessInterval(cfg.BrightnessInterval),
	)
	go w.Run(ctx)

	log.Info().Msg("Daemon running, press Ctrl+C to stop")
	<-ctx.Done()

	// Cleanup
	log.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop server")
	}

	// Gamma ramps survive process exit, so restore identity ramps explicitly.
	for _, name := range manager.DeviceNames() {
		if err := gamma.Reset(name); err != nil {
			log.Debug().Err(err).Str("device", name).Msg("Failed to reset gamma ramp")
		}
	}

	overlayLoop.Stop()
	manager.Close()

	log.Info().Msg("Daemon stopped")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}
