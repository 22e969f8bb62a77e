//go:build windows

package cursor

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procShowCursor   = user32.NewProc("ShowCursor")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

// winToggler drives user32 ShowCursor. The call keeps an internal display
// counter, so Show and Hide loop until the counter actually crosses the
// threshold instead of trusting a single increment.
type winToggler struct{}

// NewOSToggler returns the platform pointer toggler.
func NewOSToggler() Toggler {
	return winToggler{}
}

func (winToggler) Show() error {
	for i := 0; i < 64; i++ {
		ret, _, _ := procShowCursor.Call(1)
		if int32(ret) >= 0 {
			return nil
		}
	}
	return fmt.Errorf("ShowCursor counter stuck below zero")
}

func (winToggler) Hide() error {
	for i := 0; i < 64; i++ {
		ret, _, _ := procShowCursor.Call(0)
		if int32(ret) < 0 {
			return nil
		}
	}
	return fmt.Errorf("ShowCursor counter stuck at or above zero")
}

type winPoint struct {
	X, Y int32
}

// PointerPosition reads the global pointer position in screen coordinates.
func PointerPosition() (image.Point, bool) {
	var p winPoint
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return image.Point{}, false
	}
	return image.Pt(int(p.X), int(p.Y)), true
}
