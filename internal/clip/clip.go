// Package clip wraps the system clipboard for share codes.
package clip

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() { initErr = clipboard.Init() })
	return initErr
}

// System is the OS text clipboard. Initialization happens lazily on first
// use; on headless systems every call reports the same init failure instead
// of panicking.
type System struct{}

// ReadText returns the clipboard text, empty if the clipboard holds none.
func (System) ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", fmt.Errorf("clipboard unavailable: %w", err)
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// WriteText replaces the clipboard contents.
func (System) WriteText(s string) error {
	if err := ensureInit(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
