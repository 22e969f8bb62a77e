package panel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colBG      = color.RGBA{28, 28, 34, 235}
	colTitle   = color.RGBA{40, 40, 48, 255}
	colBorder  = color.RGBA{82, 82, 94, 255}
	colTrack   = color.RGBA{58, 58, 66, 255}
	colAccent  = color.RGBA{96, 148, 220, 255}
	colHandle  = color.RGBA{210, 210, 218, 255}
	colText    = color.RGBA{232, 232, 236, 255}
	colMuted   = color.RGBA{158, 158, 166, 255}
	colBtn     = color.RGBA{52, 52, 60, 255}
	colBtnHov  = color.RGBA{66, 66, 76, 255}
	colBtnDown = color.RGBA{44, 44, 52, 255}
)

// Draw paints the whole panel card. Skipped entirely while hidden.
func (p *Panel) Draw(dst *ebiten.Image) {
	if !p.visible {
		return
	}

	fillRect(dst, p.rect, colBG)
	titleBar := image.Rect(p.rect.Min.X, p.rect.Min.Y, p.rect.Max.X, p.rect.Min.Y+titleH)
	fillRect(dst, titleBar, colTitle)
	strokeRect(dst, p.rect, 1, colBorder)

	textAt(dst, "CrossSight", p.rect.Min.X+pad, p.rect.Min.Y+18, colText)
	p.closeBtn.draw(dst)

	p.size.draw(dst)
	p.thickness.draw(dst)
	p.gap.draw(dst)
	p.colorSwatch.draw(dst)
	p.outline.draw(dst)
	p.outlineThickness.draw(dst)
	p.outlineColorSwatch.draw(dst)
	p.centerDot.draw(dst)
	p.dotSize.draw(dst)
	p.opacity.draw(dst)

	p.saveBtn.draw(dst)
	p.loadBtn.draw(dst)
	p.copyBtn.draw(dst)
	p.pasteBtn.draw(dst)
	p.resetBtn.draw(dst)
	p.closeToTray.draw(dst)

	if p.status != "" {
		ebitenutil.DebugPrintAt(dst, p.status, p.rect.Min.X+pad, p.rect.Max.Y-statusH-4)
	}
}

func (s *slider) draw(dst *ebiten.Image) {
	textAt(dst, s.label, s.rect.Min.X-labelW, baseline(s.rect), colText)

	// thin track with the filled part in the accent color
	cy := s.rect.Min.Y + s.rect.Dy()/2
	track := image.Rect(s.rect.Min.X, cy-3, s.rect.Max.X, cy+3)
	fillRect(dst, track, colTrack)
	fillW := int(s.ratio() * float64(track.Dx()))
	fillRect(dst, image.Rect(track.Min.X, track.Min.Y, track.Min.X+fillW, track.Max.Y), colAccent)

	hx := float32(track.Min.X + fillW)
	vector.DrawFilledCircle(dst, hx, float32(cy), 7, colHandle, true)

	textAt(dst, fmt.Sprintf("%d", s.value), s.rect.Max.X+10, baseline(s.rect), colMuted)
}

func (b *button) draw(dst *ebiten.Image) {
	bg := colBtn
	switch {
	case b.pressed:
		bg = colBtnDown
	case b.hovered:
		bg = colBtnHov
	}
	fillRect(dst, b.rect, bg)
	strokeRect(dst, b.rect, 1, colBorder)
	textAt(dst, b.label, b.rect.Min.X+(b.rect.Dx()-7*len(b.label))/2, baseline(b.rect), colText)
}

func (c *checkbox) draw(dst *ebiten.Image) {
	box := image.Rect(c.rect.Min.X, c.rect.Min.Y+(c.rect.Dy()-16)/2, c.rect.Min.X+16, c.rect.Min.Y+(c.rect.Dy()+16)/2)
	fillRect(dst, box, colBtn)
	strokeRect(dst, box, 1, colBorder)
	if c.checked {
		fillRect(dst, box.Inset(4), colAccent)
	}
	textAt(dst, c.label, box.Max.X+8, baseline(c.rect), colText)
}

func (w *swatch) draw(dst *ebiten.Image) {
	textAt(dst, w.label, w.rect.Min.X, baseline(w.rect), colText)

	box := image.Rect(w.rect.Min.X+labelW, w.rect.Min.Y+3, w.rect.Max.X-64, w.rect.Max.Y-3)
	fillRect(dst, box, w.color.NRGBA())
	border := colBorder
	if w.hovered {
		border = colHandle
	}
	strokeRect(dst, box, 1, border)

	textAt(dst, w.color.Hex(), box.Max.X+8, baseline(w.rect), colMuted)
}

func baseline(r image.Rectangle) int {
	return r.Min.Y + (r.Dy()+11)/2 - 1
}

func textAt(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}
