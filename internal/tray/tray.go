// Package tray keeps CrossSight reachable from the system tray while the
// control panel is hidden.
package tray

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/energye/systray"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/crosssight/internal/render"
	"github.com/iburimskiy/crosssight/internal/settings"
)

var trayLog = log.With().Str("module", "tray").Logger()

// Event is a user gesture on the tray icon.
type Event int

const (
	// EventShow restores the control panel.
	EventShow Event = iota
	// EventQuit exits the application.
	EventQuit
)

// Tray owns the systray lifecycle. Gestures arrive on a buffered channel the
// UI loop drains once per frame; a full queue drops gestures instead of
// blocking the tray thread.
type Tray struct {
	events   chan Event
	started  atomic.Bool
	lastIcon time.Time
}

func New() *Tray {
	return &Tray{events: make(chan Event, 8)}
}

// Events is the gesture queue for the UI loop.
func (t *Tray) Events() <-chan Event { return t.events }

// Push delivers an event to the UI loop, dropping it when the queue is full.
func (t *Tray) Push(e Event) {
	select {
	case t.events <- e:
	default:
		trayLog.Warn().Int("event", int(e)).Msg("tray event dropped, queue full")
	}
}

// Start registers the icon with the desktop shell and returns a stop
// function. systray runs its own internal loop; the external-loop entry
// point lets ebiten keep the main thread.
func (t *Tray) Start(initial settings.Settings) (stop func()) {
	start, end := systray.RunWithExternalLoop(func() { t.onReady(initial) }, func() {})
	start()
	return end
}

func (t *Tray) onReady(s settings.Settings) {
	t.started.Store(true)
	t.applyIcon(s)
	systray.SetTooltip("CrossSight crosshair overlay")

	show := systray.AddMenuItem("Show", "Show the control panel")
	show.Click(func() { t.Push(EventShow) })
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Quit CrossSight")
	quit.Click(func() { t.Push(EventQuit) })

	// double click restores the panel, right click opens the menu
	systray.SetOnDClick(func(systray.IMenu) { t.Push(EventShow) })
	systray.SetOnRClick(func(menu systray.IMenu) {
		if err := menu.ShowMenu(); err != nil {
			trayLog.Warn().Err(err).Msg("tray menu failed to open")
		}
	})

	trayLog.Info().Msg("tray icon registered")
}

// RefreshIcon re-renders the icon for a changed record. Rate limited so a
// slider drag does not spam the desktop shell with icon updates.
func (t *Tray) RefreshIcon(s settings.Settings) {
	if !t.started.Load() {
		return
	}
	if time.Since(t.lastIcon) < time.Second {
		return
	}
	t.lastIcon = time.Now()
	t.applyIcon(s)
}

func (t *Tray) applyIcon(s settings.Settings) {
	if !t.started.Load() {
		return
	}
	data, err := render.IconPNG(s, 32)
	if err != nil {
		trayLog.Error().Err(err).Msg("tray icon render failed")
		return
	}
	if runtime.GOOS == "windows" {
		data = render.IconICO(data, 32)
	}
	systray.SetIcon(data)
}
