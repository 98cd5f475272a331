// main.go - Entry point for the FixPoint screen overlay

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func boilerPlate() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Println("\n\033[38;2;255;255;0m▌ FixPoint\033[0m  fixed visual reference points for motion sensitivity")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	if err := newRootCommand(runOverlay).Execute(); err != nil {
		log.Error().Err(err).Msg("FixPoint failed")
		os.Exit(1)
	}
}

func newRootCommand(run func(AppOptions) error) *cobra.Command {
	opts, envErr := LoadAppOptions()

	cmd := &cobra.Command{
		Use:   "fixpoint",
		Short: "Always-on-top click-through overlay of fixed reference shapes",
		Long: `FixPoint draws small, fixed shapes at the screen edges, center and corners
to give the eye a stable reference point. It lives in the system tray; use
the tray menu or the configured function key to show or hide the overlay.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "settings file (default: per-user config dir)")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: trace, debug, info, warn, error")
	flags.BoolVar(&opts.ShowOverlays, "show", opts.ShowOverlays, "show the overlay at start instead of the settings dialog")
	flags.StringVar(&opts.Backend, "backend", opts.Backend, "display backend: ebiten or headless")
	return cmd
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func runOverlay(opts AppOptions) error {
	if err := setupLogging(opts.LogLevel); err != nil {
		return err
	}
	boilerPlate()

	path, err := opts.SettingsPath()
	if err != nil {
		return fmt.Errorf("resolving settings path: %w", err)
	}
	store := NewSettingsStore(path)
	settings := store.Load()
	log.Info().Str("path", path).Msg("Settings loaded")

	backend, err := opts.DisplayBackend()
	if err != nil {
		return err
	}
	display, err := NewOverlayDisplay(backend)
	if err != nil {
		return err
	}
	defer display.Close()

	app := NewOverlayApp(settings, OverlayAppDeps{
		Store:     store,
		Display:   display,
		Hotkeys:   NewGlobalHotkeys(),
		Tray:      NewSystrayIcon(),
		Clipboard: NewSystemClipboard(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		app.Post(EventExit)
	}()

	app.Start(opts.ShowOverlays)
	runErr := display.Run(app)
	app.Shutdown()
	log.Info().Msg("FixPoint exited")
	return runErr
}
