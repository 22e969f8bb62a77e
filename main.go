package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/crosssight/internal/clip"
	"github.com/iburimskiy/crosssight/internal/config"
	"github.com/iburimskiy/crosssight/internal/cursor"
	"github.com/iburimskiy/crosssight/internal/dialog"
	"github.com/iburimskiy/crosssight/internal/overlay"
	"github.com/iburimskiy/crosssight/internal/panel"
	"github.com/iburimskiy/crosssight/internal/settings"
	"github.com/iburimskiy/crosssight/internal/tray"
)

func main() {
	figure.NewFigure("CrossSight", "", true).Print()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("no user config dir, using defaults")
	}
	cfg := config.Default()
	if cfgPath != "" {
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Warn().Err(err).Str("path", cfgPath).Msg("config unreadable, using defaults")
		}
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.ProfileDir == "" && cfgPath != "" {
		cfg.ProfileDir = filepath.Dir(cfgPath)
	}

	store := settings.NewStore(settings.Default())

	ctl := cursor.NewController(cursor.NewOSToggler())
	// the pointer must never stay hidden past exit, panics included
	defer ctl.Restore()

	screenW, screenH := ebiten.ScreenSizeInFullscreen()
	log.Info().
		Int("width", screenW).
		Int("height", screenH).
		Int("poll_ms", cfg.PollIntervalMS).
		Msg("starting overlay")

	pnl := panel.New(store, dialog.Native{}, clip.System{}, cfg, screenW, screenH)

	tr := tray.New()
	stopTray := tr.Start(store.Get())
	defer stopTray()

	surface := overlay.New(store, pnl, ctl, tr, cfg, screenW, screenH)
	overlay.ConfigureWindow(screenW, screenH)

	if err := ebiten.RunGameWithOptions(surface, overlay.RunOptions()); err != nil && !errors.Is(err, ebiten.Termination) {
		ctl.Restore()
		log.Fatal().Err(err).Msg("overlay loop failed")
	}
	log.Info().Msg("bye")
}
