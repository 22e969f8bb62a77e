// Package render rasterizes the crosshair into plain RGBA images. Keeping the
// drawing off the GPU means the exact pixel output is testable and the same
// routine can feed both the overlay texture and the tray icon.
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// Extent returns the half-side of the square tile that fits every painted
// pixel of the crosshair, including outline width and the dot halo, with a
// small margin for anti-aliased edges.
func Extent(s settings.Settings) int {
	w := float64(s.Thickness)
	if s.Outline {
		w += 2 * float64(s.OutlineThickness)
	}
	arm := float64(s.Gap+s.Size) + w/2

	dot := 0.0
	if s.CenterDot {
		dot = float64(s.DotSize)
		if s.Outline {
			dot++
		}
	}

	return int(math.Ceil(math.Max(arm, dot))) + 2
}

// Crosshair renders the record into a 2*Extent square tile. The geometric
// center sits on the pixel corner at (Extent, Extent), so blitting the tile
// at (cx-Extent, cy-Extent) centers it exactly on (cx, cy).
func Crosshair(s settings.Settings) *image.RGBA {
	e := Extent(s)
	dc := gg.NewContext(2*e, 2*e)
	draw(dc, s, float64(e), float64(e), 1)
	return dc.Image().(*image.RGBA)
}

// draw paints the crosshair at (cx, cy) with every length multiplied by k.
// Order matters: outline arms, primary arms, dot halo, dot, so the outline
// always sits beneath the primary shape.
func draw(dc *gg.Context, s settings.Settings, cx, cy, k float64) {
	alpha := int(math.Round(s.Opacity * 255))
	dc.SetLineCap(gg.LineCapButt)

	in := k * float64(s.Gap)
	out := k * float64(s.Gap+s.Size)

	if s.Outline {
		dc.SetRGBA255(int(s.OutlineColor.R), int(s.OutlineColor.G), int(s.OutlineColor.B), alpha)
		dc.SetLineWidth(k * float64(s.Thickness+2*s.OutlineThickness))
		strokeArms(dc, cx, cy, in, out)
	}

	dc.SetRGBA255(int(s.Color.R), int(s.Color.G), int(s.Color.B), alpha)
	dc.SetLineWidth(k * float64(s.Thickness))
	strokeArms(dc, cx, cy, in, out)

	if s.CenterDot {
		if s.Outline {
			dc.SetRGBA255(int(s.OutlineColor.R), int(s.OutlineColor.G), int(s.OutlineColor.B), alpha)
			dc.DrawCircle(cx, cy, k*float64(s.DotSize+1))
			dc.Fill()
		}
		dc.SetRGBA255(int(s.Color.R), int(s.Color.G), int(s.Color.B), alpha)
		dc.DrawCircle(cx, cy, k*float64(s.DotSize))
		dc.Fill()
	}
}

// strokeArms draws the four gap-separated arms as one stroked path. Butt caps
// keep the arm tips flush, so nothing leaks into the gap hole.
func strokeArms(dc *gg.Context, cx, cy, in, out float64) {
	dc.DrawLine(cx-out, cy, cx-in, cy)
	dc.DrawLine(cx+in, cy, cx+out, cy)
	dc.DrawLine(cx, cy-out, cx, cy-in)
	dc.DrawLine(cx, cy+in, cx, cy+out)
	dc.Stroke()
}
