package panel

import (
	"image"
	"math"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// Input carries one frame of pointer state in screen coordinates. The overlay
// fills it from ebiten; tests fill it by hand.
type Input struct {
	Pos          image.Point
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// clickable is the shared press/release tracking for buttons, checkboxes and
// swatches. A click only fires when the release lands back inside the widget.
type clickable struct {
	rect    image.Rectangle
	hovered bool
	pressed bool
}

func (c *clickable) update(in Input) bool {
	c.hovered = in.Pos.In(c.rect)
	if c.hovered && in.JustPressed {
		c.pressed = true
	}
	if in.JustReleased {
		was := c.pressed
		c.pressed = false
		return was && c.hovered
	}
	if !in.Pressed {
		c.pressed = false
	}
	return false
}

type button struct {
	clickable
	label string
}

type checkbox struct {
	clickable
	label   string
	checked bool
}

// update reports true when the user toggled the box this frame.
func (c *checkbox) update(in Input) bool {
	if c.clickable.update(in) {
		c.checked = !c.checked
		return true
	}
	return false
}

func (c *checkbox) set(v bool) { c.checked = v }

// swatch shows a color and opens the picker when clicked.
type swatch struct {
	clickable
	label string
	color settings.RGB
}

// slider maps a horizontal drag on its track to an int in [min, max].
type slider struct {
	label    string
	min, max int
	value    int
	rect     image.Rectangle // track hit area, set by layout
	hovered  bool
	dragging bool
}

// update reports true when dragging changed the value this frame. The drag
// keeps following the pointer outside the track until the button is released.
func (s *slider) update(in Input) bool {
	s.hovered = in.Pos.In(s.rect)
	if s.hovered && in.JustPressed {
		s.dragging = true
	}

	old := s.value
	if s.dragging {
		if in.Pressed || in.JustReleased {
			s.value = s.valueAt(in.Pos.X)
		}
		if !in.Pressed {
			s.dragging = false
		}
	}
	return s.value != old
}

func (s *slider) valueAt(x int) int {
	w := s.rect.Dx()
	if w <= 0 {
		return s.min
	}
	ratio := float64(x-s.rect.Min.X) / float64(w)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return s.min + int(math.Round(ratio*float64(s.max-s.min)))
}

func (s *slider) set(v int) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = v
}

func (s *slider) ratio() float64 {
	if s.max == s.min {
		return 0
	}
	return float64(s.value-s.min) / float64(s.max-s.min)
}
