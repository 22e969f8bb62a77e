// Package dialog wraps the native pickers behind a small interface-friendly
// type, so the panel logic can be driven by a fake in tests while the real
// build talks to zenity.
package dialog

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// Native drives the platform dialogs. Every method reports cancellation
// separately from failure so callers can abort silently on cancel.
type Native struct{}

// PickColor opens the color picker seeded with the current color.
func (Native) PickColor(current settings.RGB) (settings.RGB, bool, error) {
	c, err := zenity.SelectColor(
		zenity.Title("Choose color"),
		zenity.Color(current.NRGBA()),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return settings.RGB{}, true, nil
	}
	if err != nil {
		return settings.RGB{}, false, err
	}
	r, g, b, _ := c.RGBA()
	return settings.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, false, nil
}

// SaveFile asks for a profile path to write, confirming overwrites.
func (Native) SaveFile(startDir string) (string, bool, error) {
	name := "profile.json"
	if startDir != "" {
		name = filepath.Join(startDir, name)
	}
	path, err := zenity.SelectFileSave(
		zenity.Title("Save profile"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{Name: "Profiles", Patterns: []string{"*.json"}, CaseFold: true},
		})
	if errors.Is(err, zenity.ErrCanceled) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, false, nil
}

// OpenFile asks for an existing profile to load.
func (Native) OpenFile(startDir string) (string, bool, error) {
	opts := []zenity.Option{
		zenity.Title("Load profile"),
		zenity.FileFilters{
			{Name: "Profiles", Patterns: []string{"*.json"}, CaseFold: true},
		},
	}
	if startDir != "" {
		opts = append(opts, zenity.Filename(startDir+string(filepath.Separator)))
	}
	path, err := zenity.SelectFile(opts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, false, nil
}

// Alert shows a modal error box.
func (Native) Alert(msg string) error {
	return zenity.Error(msg, zenity.Title("CrossSight"), zenity.ErrorIcon)
}
