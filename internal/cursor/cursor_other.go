//go:build !windows

package cursor

import "image"

// noopToggler is used where no global pointer API is wired up. The overlay
// window still hides its own cursor through ebiten, so the feature degrades
// to window-local behavior instead of failing.
type noopToggler struct{}

// NewOSToggler returns the platform pointer toggler.
func NewOSToggler() Toggler {
	return noopToggler{}
}

func (noopToggler) Show() error { return nil }

func (noopToggler) Hide() error { return nil }

// PointerPosition reports no global sample; callers fall back to the window
// cursor position, which matches screen coordinates for a fullscreen overlay.
func PointerPosition() (image.Point, bool) {
	return image.Point{}, false
}
