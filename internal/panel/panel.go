// Package panel is the in-window control panel: a draggable card of sliders,
// checkboxes and buttons that edits the live settings record. Update logic is
// plain data in, data out; drawing lives apart so tests never touch the GPU.
package panel

import (
	"image"
	"math"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/crosssight/internal/config"
	"github.com/iburimskiy/crosssight/internal/profile"
	"github.com/iburimskiy/crosssight/internal/settings"
)

var pnlLog = log.With().Str("module", "panel").Logger()

// Dialogs is what the panel needs from the native dialog layer. The bool
// result means the user cancelled; that is not an error.
type Dialogs interface {
	PickColor(current settings.RGB) (settings.RGB, bool, error)
	SaveFile(startDir string) (string, bool, error)
	OpenFile(startDir string) (string, bool, error)
	Alert(msg string) error
}

// Clipboard is the text clipboard surface used for share codes.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(string) error
}

// Action is what a frame of panel input asks the host window to do.
type Action int

const (
	ActionNone Action = iota
	// ActionClose is the panel's close button; the host decides between
	// hiding to the tray and quitting.
	ActionClose
)

const (
	panelW   = 400
	pad      = 12
	titleH   = 26
	rowH     = 30
	rowGap   = 6
	labelW   = 150
	readoutW = 44
	statusH  = 20

	rowCount = 13
	panelH   = titleH + pad + rowCount*(rowH+rowGap) + statusH + pad
)

// Panel owns the widgets and writes user edits through to the settings store.
// It tracks its own bounds so the host can keep the OS cursor alive over it.
type Panel struct {
	store   *settings.Store
	dialogs Dialogs
	clip    Clipboard

	rect    image.Rectangle
	screen  image.Rectangle
	visible bool
	status  string

	dragging bool
	dragOff  image.Point

	profileDir string

	size             *slider
	thickness        *slider
	gap              *slider
	outlineThickness *slider
	dotSize          *slider
	opacity          *slider // percent, 10..100

	outline     *checkbox
	centerDot   *checkbox
	closeToTray *checkbox

	colorSwatch        *swatch
	outlineColorSwatch *swatch

	saveBtn  *button
	loadBtn  *button
	copyBtn  *button
	pasteBtn *button
	resetBtn *button
	closeBtn *button
}

// New builds the panel at its default position, synced to the store record.
func New(store *settings.Store, dialogs Dialogs, clip Clipboard, cfg config.Config, screenW, screenH int) *Panel {
	p := &Panel{
		store:      store,
		dialogs:    dialogs,
		clip:       clip,
		screen:     image.Rect(0, 0, screenW, screenH),
		visible:    true,
		profileDir: cfg.ProfileDir,

		size:             &slider{label: "Size", min: settings.MinSize, max: settings.MaxSize},
		thickness:        &slider{label: "Thickness", min: settings.MinThickness, max: settings.MaxThickness},
		gap:              &slider{label: "Gap", min: settings.MinGap, max: settings.MaxGap},
		outlineThickness: &slider{label: "Outline thickness", min: settings.MinOutlineThickness, max: settings.MaxOutlineThickness},
		dotSize:          &slider{label: "Dot size", min: settings.MinDotSize, max: settings.MaxDotSize},
		opacity:          &slider{label: "Opacity %", min: 10, max: 100},

		outline:     &checkbox{label: "Outline"},
		centerDot:   &checkbox{label: "Center dot"},
		closeToTray: &checkbox{label: "Close to tray", checked: cfg.CloseToTray},

		colorSwatch:        &swatch{label: "Color"},
		outlineColorSwatch: &swatch{label: "Outline color"},

		saveBtn:  &button{label: "Save profile"},
		loadBtn:  &button{label: "Load profile"},
		copyBtn:  &button{label: "Copy code"},
		pasteBtn: &button{label: "Paste code"},
		resetBtn: &button{label: "Reset"},
		closeBtn: &button{label: "X"},
	}
	p.rect = image.Rect(80, 80, 80+panelW, 80+panelH)
	p.syncWidgets(store.Get())
	p.layout()
	return p
}

// layout recomputes every widget rect from the panel origin. Cheap enough to
// run after every move.
func (p *Panel) layout() {
	x := p.rect.Min.X + pad
	w := p.rect.Dx() - 2*pad
	y := p.rect.Min.Y + titleH + pad

	row := func() image.Rectangle {
		r := image.Rect(x, y, x+w, y+rowH)
		y += rowH + rowGap
		return r
	}
	track := func(r image.Rectangle) image.Rectangle {
		return image.Rect(r.Min.X+labelW, r.Min.Y, r.Max.X-readoutW, r.Max.Y)
	}
	split := func(r image.Rectangle) (image.Rectangle, image.Rectangle) {
		mid := r.Min.X + r.Dx()/2
		return image.Rect(r.Min.X, r.Min.Y, mid-4, r.Max.Y),
			image.Rect(mid+4, r.Min.Y, r.Max.X, r.Max.Y)
	}

	p.size.rect = track(row())
	p.thickness.rect = track(row())
	p.gap.rect = track(row())
	p.colorSwatch.rect = row()
	p.outline.rect = row()
	p.outlineThickness.rect = track(row())
	p.outlineColorSwatch.rect = row()
	p.centerDot.rect = row()
	p.dotSize.rect = track(row())
	p.opacity.rect = track(row())

	p.saveBtn.rect, p.loadBtn.rect = split(row())
	p.copyBtn.rect, p.pasteBtn.rect = split(row())
	p.resetBtn.rect, p.closeToTray.rect = split(row())

	p.closeBtn.rect = image.Rect(p.rect.Max.X-24, p.rect.Min.Y+4, p.rect.Max.X-6, p.rect.Min.Y+22)
}

// Rect returns the current panel bounds in screen coordinates.
func (p *Panel) Rect() image.Rectangle { return p.rect }

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(v bool) {
	p.visible = v
	if v {
		p.status = ""
	}
}

// CloseToTray reflects the panel checkbox controlling close behavior.
func (p *Panel) CloseToTray() bool { return p.closeToTray.checked }

// Update consumes one frame of input. Widget edits write straight through to
// the store; the returned action is for the host window.
func (p *Panel) Update(in Input) Action {
	if !p.visible {
		return ActionNone
	}

	titleBar := image.Rect(p.rect.Min.X, p.rect.Min.Y, p.rect.Max.X, p.rect.Min.Y+titleH)
	if in.JustPressed && in.Pos.In(titleBar) && !in.Pos.In(p.closeBtn.rect) {
		p.dragging = true
		p.dragOff = in.Pos.Sub(p.rect.Min)
	}
	if p.dragging {
		if in.Pressed {
			p.moveTo(in.Pos.Sub(p.dragOff))
		} else {
			p.dragging = false
		}
	}

	act := ActionNone
	if p.closeBtn.update(in) {
		act = ActionClose
	}

	if p.size.update(in) {
		p.store.Update(func(s *settings.Settings) { s.Size = p.size.value })
	}
	if p.thickness.update(in) {
		p.store.Update(func(s *settings.Settings) { s.Thickness = p.thickness.value })
	}
	if p.gap.update(in) {
		p.store.Update(func(s *settings.Settings) { s.Gap = p.gap.value })
	}
	if p.outlineThickness.update(in) {
		p.store.Update(func(s *settings.Settings) { s.OutlineThickness = p.outlineThickness.value })
	}
	if p.dotSize.update(in) {
		p.store.Update(func(s *settings.Settings) { s.DotSize = p.dotSize.value })
	}
	if p.opacity.update(in) {
		p.store.Update(func(s *settings.Settings) { s.Opacity = float64(p.opacity.value) / 100 })
	}

	if p.outline.update(in) {
		p.store.Update(func(s *settings.Settings) { s.Outline = p.outline.checked })
	}
	if p.centerDot.update(in) {
		p.store.Update(func(s *settings.Settings) { s.CenterDot = p.centerDot.checked })
	}
	p.closeToTray.update(in) // behavior knob only, not part of the record

	if p.colorSwatch.update(in) {
		p.pickColor(p.colorSwatch, func(s *settings.Settings, c settings.RGB) { s.Color = c })
	}
	if p.outlineColorSwatch.update(in) {
		p.pickColor(p.outlineColorSwatch, func(s *settings.Settings, c settings.RGB) { s.OutlineColor = c })
	}

	if p.saveBtn.update(in) {
		p.saveProfile()
	}
	if p.loadBtn.update(in) {
		p.loadProfile()
	}
	if p.copyBtn.update(in) {
		p.copyCode()
	}
	if p.pasteBtn.update(in) {
		p.pasteCode()
	}
	if p.resetBtn.update(in) {
		p.applySnapshot(settings.Default())
		p.status = "Defaults restored"
	}

	return act
}

func (p *Panel) moveTo(origin image.Point) {
	maxX := p.screen.Dx() - panelW
	maxY := p.screen.Dy() - panelH
	if origin.X < 0 {
		origin.X = 0
	}
	if origin.Y < 0 {
		origin.Y = 0
	}
	if maxX > 0 && origin.X > maxX {
		origin.X = maxX
	}
	if maxY > 0 && origin.Y > maxY {
		origin.Y = maxY
	}
	p.rect = image.Rect(origin.X, origin.Y, origin.X+panelW, origin.Y+panelH)
	p.layout()
}

// applySnapshot swaps the whole record in one step: one store notification,
// then every widget is set to the canonical clamped values.
func (p *Panel) applySnapshot(s settings.Settings) {
	p.store.Replace(s)
	p.syncWidgets(p.store.Get())
}

func (p *Panel) syncWidgets(s settings.Settings) {
	p.size.set(s.Size)
	p.thickness.set(s.Thickness)
	p.gap.set(s.Gap)
	p.outlineThickness.set(s.OutlineThickness)
	p.dotSize.set(s.DotSize)
	p.opacity.set(int(math.Round(s.Opacity * 100)))
	p.outline.set(s.Outline)
	p.centerDot.set(s.CenterDot)
	p.colorSwatch.color = s.Color
	p.outlineColorSwatch.color = s.OutlineColor
}

func (p *Panel) pickColor(w *swatch, assign func(*settings.Settings, settings.RGB)) {
	c, cancelled, err := p.dialogs.PickColor(w.color)
	if err != nil {
		pnlLog.Error().Err(err).Msg("color picker failed")
		p.status = "Color picker failed"
		return
	}
	if cancelled {
		return
	}
	p.store.Update(func(s *settings.Settings) { assign(s, c) })
	w.color = c
}

func (p *Panel) saveProfile() {
	path, cancelled, err := p.dialogs.SaveFile(p.profileDir)
	if err != nil {
		pnlLog.Error().Err(err).Msg("save dialog failed")
		p.status = "Save dialog failed"
		return
	}
	if cancelled {
		return
	}

	if err := profile.Save(path, p.store.Get()); err != nil {
		pnlLog.Error().Err(err).Msg("profile save failed")
		p.status = "Save failed"
		return
	}
	pnlLog.Info().Str("path", path).Msg("profile saved")
	p.status = "Saved " + filepath.Base(path)
}

func (p *Panel) loadProfile() {
	path, cancelled, err := p.dialogs.OpenFile(p.profileDir)
	if err != nil {
		pnlLog.Error().Err(err).Msg("open dialog failed")
		p.status = "Open dialog failed"
		return
	}
	if cancelled {
		return
	}

	s, err := profile.Load(path)
	if err != nil {
		// current settings stay exactly as they were
		pnlLog.Error().Err(err).Msg("profile load failed")
		p.status = "Load failed"
		p.dialogs.Alert("Could not load profile:\n" + err.Error())
		return
	}
	p.applySnapshot(s)
	pnlLog.Info().Str("path", path).Msg("profile loaded")
	p.status = "Loaded " + filepath.Base(path)
}

func (p *Panel) copyCode() {
	code, err := profile.EncodeCode(p.store.Get())
	if err != nil {
		pnlLog.Error().Err(err).Msg("share code encode failed")
		p.status = "Copy failed"
		return
	}
	if err := p.clip.WriteText(code); err != nil {
		pnlLog.Warn().Err(err).Msg("clipboard write failed")
		p.status = "Clipboard unavailable"
		return
	}
	p.status = "Share code copied"
}

func (p *Panel) pasteCode() {
	txt, err := p.clip.ReadText()
	if err != nil {
		pnlLog.Warn().Err(err).Msg("clipboard read failed")
		p.status = "Clipboard unavailable"
		return
	}
	s, err := profile.DecodeCode(txt)
	if err != nil {
		pnlLog.Warn().Err(err).Msg("share code rejected")
		p.status = "Invalid share code"
		return
	}
	p.applySnapshot(s)
	p.status = "Share code applied"
}
