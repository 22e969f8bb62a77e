// Package overlay runs the fullscreen transparent window that carries the
// crosshair and hosts the control panel. One window does both jobs: while the
// panel is hidden the window goes mouse-passthrough and behaves like a pure
// overlay, while the panel is up it takes input like a normal window.
package overlay

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/crosssight/internal/config"
	"github.com/iburimskiy/crosssight/internal/cursor"
	"github.com/iburimskiy/crosssight/internal/panel"
	"github.com/iburimskiy/crosssight/internal/render"
	"github.com/iburimskiy/crosssight/internal/settings"
	"github.com/iburimskiy/crosssight/internal/tray"
)

var ovlLog = log.With().Str("module", "overlay").Logger()

// Surface is the ebiten game. The crosshair tile is re-rastered lazily: only
// after the settings record actually changed.
type Surface struct {
	store *settings.Store
	panel *panel.Panel
	cur   *cursor.Controller
	tray  *tray.Tray
	cfg   config.Config

	screenW, screenH int

	tile  *ebiten.Image
	dirty bool

	passthrough bool
	cursorShown bool
	lastPoll    time.Time

	// pointerPos samples the global pointer; swapped for a fake in tests
	pointerPos func() (image.Point, bool)
}

// New wires the surface to the store. The tray may be nil when the desktop
// has no tray support.
func New(store *settings.Store, pnl *panel.Panel, cur *cursor.Controller, tr *tray.Tray, cfg config.Config, screenW, screenH int) *Surface {
	s := &Surface{
		store:       store,
		panel:       pnl,
		cur:         cur,
		tray:        tr,
		cfg:         cfg,
		screenW:     screenW,
		screenH:     screenH,
		dirty:       true,
		cursorShown: true,
		pointerPos:  cursor.PointerPosition,
	}
	store.Subscribe(func(rec settings.Settings) {
		s.dirty = true
		if s.tray != nil {
			s.tray.RefreshIcon(rec)
		}
	})
	return s
}

// ConfigureWindow applies the overlay window flags. Must run before the game
// loop starts.
func ConfigureWindow(w, h int) {
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("CrossSight")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
}

// RunOptions makes the window transparent, keeps it off the taskbar and
// stops it from grabbing focus at launch.
func RunOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		InitUnfocused:     true,
		ScreenTransparent: true,
		SkipTaskbar:       true,
	}
}

func (s *Surface) Update() error {
	var events <-chan tray.Event
	if s.tray != nil {
		events = s.tray.Events()
	}
drain:
	for {
		select {
		case ev := <-events:
			switch ev {
			case tray.EventShow:
				ovlLog.Info().Msg("restored from tray")
				s.panel.SetVisible(true)
			case tray.EventQuit:
				return s.shutdown()
			}
		default:
			break drain
		}
	}

	if ebiten.IsWindowBeingClosed() {
		return s.closePanel()
	}

	if s.panel.Visible() {
		if act := s.panel.Update(s.readInput()); act == panel.ActionClose {
			return s.closePanel()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return s.closePanel()
		}
	}

	s.syncPassthrough()
	s.pollCursor()
	return nil
}

func (s *Surface) Draw(screen *ebiten.Image) {
	if s.dirty || s.tile == nil {
		s.tile = ebiten.NewImageFromImage(render.Crosshair(s.store.Get()))
		s.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	e := s.tile.Bounds().Dx() / 2
	op.GeoM.Translate(float64(s.screenW/2-e), float64(s.screenH/2-e))
	screen.DrawImage(s.tile, op)

	s.panel.Draw(screen)
}

func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.screenW, s.screenH
}

func (s *Surface) readInput() panel.Input {
	x, y := ebiten.CursorPosition()
	return panel.Input{
		Pos:          image.Pt(x, y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// closePanel is the close gesture: hide to the tray when configured, quit
// otherwise.
func (s *Surface) closePanel() error {
	if s.panel.CloseToTray() && s.tray != nil {
		s.panel.SetVisible(false)
		ovlLog.Info().Msg("panel hidden to tray")
		return nil
	}
	return s.shutdown()
}

// shutdown restores the pointer before the loop exits. main restores again
// via defer, but doing it here keeps the window teardown ordering clean.
func (s *Surface) shutdown() error {
	s.cur.Restore()
	ovlLog.Info().Msg("shutting down")
	return ebiten.Termination
}

// syncPassthrough flips window input transparency on panel visibility edges.
func (s *Surface) syncPassthrough() {
	want := !s.panel.Visible()
	if want != s.passthrough {
		ebiten.SetWindowMousePassthrough(want)
		s.passthrough = want
		ovlLog.Debug().Bool("passthrough", want).Msg("mouse passthrough switched")
	}
}

// pollCursor samples the pointer on the configured cadence and applies the
// visibility policy edge-triggered.
func (s *Surface) pollCursor() {
	if time.Since(s.lastPoll) < s.cfg.PollInterval() {
		return
	}
	s.lastPoll = time.Now()

	pt, ok := s.pointerPos()
	if !ok {
		// window-local fallback; the window covers the screen from (0,0)
		x, y := ebiten.CursorPosition()
		pt = image.Pt(x, y)
	}
	want := cursor.Decide(s.panel.Rect(), s.panel.Visible(), pt)
	s.cur.Apply(want)

	// mirror into the window cursor, so platforms without a global pointer
	// API still hide the cursor over the overlay itself
	if want != s.cursorShown {
		mode := ebiten.CursorModeVisible
		if !want {
			mode = ebiten.CursorModeHidden
		}
		ebiten.SetCursorMode(mode)
		s.cursorShown = want
	}
}
