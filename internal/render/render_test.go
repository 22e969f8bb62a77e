package render

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"math"
	"testing"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// distance from a pixel's center to the tile center at (e, e)
func centerDist(x, y, e int) float64 {
	dx := float64(x) + 0.5 - float64(e)
	dy := float64(y) + 0.5 - float64(e)
	return math.Hypot(dx, dy)
}

func TestDefaultGeometry(t *testing.T) {
	img := Crosshair(settings.Default())
	e := img.Bounds().Dx() / 2

	// interior of the left arm: pure red at full alpha
	if c := img.RGBAAt(e-10, e); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Expected solid red inside the left arm, got %v", c)
	}
	// same for the top arm
	if c := img.RGBAAt(e, e-10); c.R != 255 || c.A != 255 {
		t.Errorf("Expected solid red inside the top arm, got %v", c)
	}
	// outline edge row sits outside the primary stroke but inside the outline
	if c := img.RGBAAt(e-10, e-2); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Expected black outline above the left arm, got %v", c)
	}
	// arms end at gap+size: one pixel past the tip is empty
	if c := img.RGBAAt(e-26, e); c.A != 0 {
		t.Errorf("Expected nothing past the arm tip, got %v", c)
	}
	// the gap ring between dot halo and arm start is empty
	if c := img.RGBAAt(e+4, e); c.A != 0 {
		t.Errorf("Expected an empty gap, got %v", c)
	}
	// red dot of radius 3 at the center
	if c := img.RGBAAt(e, e); c.R != 255 || c.A != 255 {
		t.Errorf("Expected a red center dot, got %v", c)
	}
	// black halo ring at radius ~3.5; the ring is one pixel wide so the
	// pixel is only partially covered, but the ink there is pure black
	if c := img.RGBAAt(e, e-4); c.R != 0 || c.G != 0 || c.B != 0 || c.A < 128 {
		t.Errorf("Expected a black halo around the dot, got %v", c)
	}
}

func TestGapStaysEmpty(t *testing.T) {
	s := settings.Default()
	s.Gap = 8
	s.Thickness = 4
	s.Size = 10
	s.CenterDot = false

	img := Crosshair(s)
	e := img.Bounds().Dx() / 2

	painted := 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			a := img.RGBAAt(x, y).A
			if a > 0 {
				painted++
			}
			if a > 0 && centerDist(x, y, e) < float64(s.Gap) {
				t.Fatalf("Expected no ink within the gap, found alpha %d at (%d,%d)", a, x, y)
			}
		}
	}
	if painted == 0 {
		t.Fatal("Expected the crosshair to paint something")
	}
}

func TestOutlineOffLeavesNoOutlineColor(t *testing.T) {
	s := settings.Default()
	s.Color = settings.RGB{R: 0xff}
	s.OutlineColor = settings.RGB{G: 0xff}
	s.Outline = false

	img := Crosshair(s)

	reds := 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			c := img.RGBAAt(x, y)
			if c.G != 0 || c.B != 0 {
				t.Fatalf("Expected no outline color anywhere, got %v at (%d,%d)", c, x, y)
			}
			if c.R > 0 {
				reds++
			}
		}
	}
	if reds == 0 {
		t.Fatal("Expected the primary color to appear")
	}
}

func TestOutlineOffSkipsDotHalo(t *testing.T) {
	s := settings.Default()
	s.Outline = false
	s.DotSize = 3

	img := Crosshair(s)
	e := img.Bounds().Dx() / 2

	// (e, e-4) has center distance ~3.5: inside the would-be halo, outside the dot
	if c := img.RGBAAt(e, e-4); c.A != 0 {
		t.Errorf("Expected no halo with outline off, got %v", c)
	}
}

func TestOpacityScalesAlpha(t *testing.T) {
	s := settings.Default()
	s.Opacity = 0.5
	s.Outline = false
	s.CenterDot = false
	s.Thickness = 4
	s.Gap = 2
	s.Size = 10

	img := Crosshair(s)
	e := img.Bounds().Dx() / 2

	c := img.RGBAAt(e-5, e) // fully covered arm interior
	if c.A < 126 || c.A > 130 {
		t.Errorf("Expected alpha near 128 at half opacity, got %d", c.A)
	}
	if c.R < 126 || c.R > 130 {
		t.Errorf("Expected premultiplied red near 128, got %d", c.R)
	}
}

func TestExtentContainsAllInk(t *testing.T) {
	cases := []settings.Settings{
		settings.Default(),
		{Size: 100, Thickness: 10, Gap: 20, Outline: true, OutlineThickness: 5,
			CenterDot: true, DotSize: 10, Opacity: 1,
			Color: settings.RGB{R: 0xff}, OutlineColor: settings.RGB{B: 0xff}},
		{Size: 5, Thickness: 1, Gap: 0, CenterDot: true, DotSize: 10, Opacity: 1,
			Color: settings.RGB{G: 0xff}},
	}
	for _, s := range cases {
		img := Crosshair(s)
		b := img.Bounds()
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, b.Min.Y).A != 0 || img.RGBAAt(x, b.Max.Y-1).A != 0 {
				t.Fatalf("Expected an empty border row for %+v", s)
			}
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if img.RGBAAt(b.Min.X, y).A != 0 || img.RGBAAt(b.Max.X-1, y).A != 0 {
				t.Fatalf("Expected an empty border column for %+v", s)
			}
		}
	}
}

func TestIconPNG(t *testing.T) {
	data, err := IconPNG(settings.Default(), 32)
	if err != nil {
		t.Fatalf("Expected icon to render, got %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Expected valid PNG, got %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("Expected 32x32, got %v", img.Bounds())
	}

	opaque := false
	for y := 0; y < 32 && !opaque; y++ {
		for x := 0; x < 32; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("Expected the icon to contain visible pixels")
	}
}

func TestIconICO(t *testing.T) {
	pngData, err := IconPNG(settings.Default(), 32)
	if err != nil {
		t.Fatal(err)
	}
	ico := IconICO(pngData, 32)

	if len(ico) != 22+len(pngData) {
		t.Fatalf("Expected %d bytes, got %d", 22+len(pngData), len(ico))
	}
	if binary.LittleEndian.Uint16(ico[2:4]) != 1 {
		t.Error("Expected resource type 1 (icon)")
	}
	if binary.LittleEndian.Uint16(ico[4:6]) != 1 {
		t.Error("Expected exactly one image entry")
	}
	if ico[6] != 32 || ico[7] != 32 {
		t.Errorf("Expected 32x32 entry, got %dx%d", ico[6], ico[7])
	}
	if binary.LittleEndian.Uint32(ico[18:22]) != 22 {
		t.Error("Expected payload offset 22")
	}
	if !bytes.HasPrefix(ico[22:], []byte("\x89PNG")) {
		t.Error("Expected PNG payload after the directory")
	}
}
