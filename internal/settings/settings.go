package settings

import (
	"fmt"
	"image/color"
	"strconv"
)

// Slider ranges for every bounded field. The control panel builds its sliders
// from these and Clamped folds out-of-range values back in.
const (
	MinSize             = 5
	MaxSize             = 100
	MinThickness        = 1
	MaxThickness        = 10
	MinGap              = 0
	MaxGap              = 20
	MinOutlineThickness = 1
	MaxOutlineThickness = 5
	MinDotSize          = 1
	MaxDotSize          = 10
	MinOpacity          = 0.10
	MaxOpacity          = 1.00
)

// RGB is a plain 8-bit color triple. Profiles carry it as a "#rrggbb" string.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as a 7-character lower-case "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ParseHex parses a "#rrggbb" string. Upper-case hex digits are accepted,
// anything else is an error.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("color %q is not a #rrggbb string", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q is not a #rrggbb string", s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MarshalJSON encodes the color as its hex string.
func (c RGB) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Hex() + `"`), nil
}

// UnmarshalJSON decodes a quoted hex string.
func (c *RGB) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("color value %s is not a string", data)
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Settings is the flat record of crosshair appearance parameters. There is
// exactly one live instance per running application, owned by a Store; the
// overlay and the tray read snapshots of it and never keep their own copy.
type Settings struct {
	Size             int     `json:"size"`
	Thickness        int     `json:"thickness"`
	Gap              int     `json:"gap"`
	Color            RGB     `json:"color"`
	Outline          bool    `json:"outline"`
	OutlineThickness int     `json:"outline_thickness"`
	OutlineColor     RGB     `json:"outline_color"`
	CenterDot        bool    `json:"center_dot"`
	DotSize          int     `json:"dot_size"`
	Opacity          float64 `json:"opacity"`
}

// Default returns the startup settings.
func Default() Settings {
	return Settings{
		Size:             20,
		Thickness:        2,
		Gap:              5,
		Color:            RGB{R: 0xff},
		Outline:          true,
		OutlineThickness: 1,
		OutlineColor:     RGB{},
		CenterDot:        true,
		DotSize:          3,
		Opacity:          1.0,
	}
}

// Clamped returns a copy with every bounded field folded into its range.
func (s Settings) Clamped() Settings {
	s.Size = clampInt(s.Size, MinSize, MaxSize)
	s.Thickness = clampInt(s.Thickness, MinThickness, MaxThickness)
	s.Gap = clampInt(s.Gap, MinGap, MaxGap)
	s.OutlineThickness = clampInt(s.OutlineThickness, MinOutlineThickness, MaxOutlineThickness)
	s.DotSize = clampInt(s.DotSize, MinDotSize, MaxDotSize)
	s.Opacity = clampFloat(s.Opacity, MinOpacity, MaxOpacity)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Store owns the live Settings record and tells subscribers when it changed.
// The panel is the only writer; the overlay and tray subscribe and react.
// Not safe for concurrent use: every access happens on the UI event loop.
type Store struct {
	cur  Settings
	subs []func(Settings)
}

// NewStore creates a store owning the given record.
func NewStore(s Settings) *Store {
	return &Store{cur: s.Clamped()}
}

// Get returns the current record.
func (st *Store) Get() Settings {
	return st.cur
}

// Update applies mutate to the record, clamps it and notifies subscribers.
func (st *Store) Update(mutate func(*Settings)) {
	mutate(&st.cur)
	st.cur = st.cur.Clamped()
	st.notify()
}

// Replace swaps the record wholesale (profile load, share-code paste, reset).
func (st *Store) Replace(s Settings) {
	st.cur = s.Clamped()
	st.notify()
}

// Subscribe registers fn to run after every change, with the new record.
func (st *Store) Subscribe(fn func(Settings)) {
	st.subs = append(st.subs, fn)
}

func (st *Store) notify() {
	for _, fn := range st.subs {
		fn(st.cur)
	}
}
