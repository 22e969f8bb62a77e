// Package profile persists crosshair settings as flat JSON files and compact
// shareable strings. Loading never partially applies: a profile either decodes
// completely or the caller gets an error and keeps its current record.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// LoadError reports a profile that could not be read or decoded. The live
// settings record is untouched when it is returned.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load profile %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a profile that could not be written. Any previous file at
// the path is left as it was.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save profile %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// document mirrors settings.Settings with pointer fields so a key that is
// absent from the file is distinguishable from a zero value.
type document struct {
	Size             *int          `json:"size"`
	Thickness        *int          `json:"thickness"`
	Gap              *int          `json:"gap"`
	Color            *settings.RGB `json:"color"`
	Outline          *bool         `json:"outline"`
	OutlineThickness *int          `json:"outline_thickness"`
	OutlineColor     *settings.RGB `json:"outline_color"`
	CenterDot        *bool         `json:"center_dot"`
	DotSize          *int          `json:"dot_size"`
	Opacity          *float64      `json:"opacity"`
}

// Save writes the record to path as indented JSON. The write goes through a
// temporary file in the same directory plus a rename, so a failure never
// leaves a half-written profile behind.
func Save(path string, s settings.Settings) error {
	data, err := sonic.MarshalIndent(s, "", "  ")
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".profile-*.tmp")
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &SaveError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &SaveError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// Load reads a profile file. Every settings key must be present and well
// formed; otherwise a LoadError is returned and nothing is applied. Range
// clamping is left to the settings store.
func Load(path string) (settings.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return settings.Settings{}, &LoadError{Path: path, Err: err}
	}
	s, err := decode(data)
	if err != nil {
		return settings.Settings{}, &LoadError{Path: path, Err: err}
	}
	return s, nil
}

func decode(data []byte) (settings.Settings, error) {
	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return settings.Settings{}, err
	}

	var missing string
	switch {
	case doc.Size == nil:
		missing = "size"
	case doc.Thickness == nil:
		missing = "thickness"
	case doc.Gap == nil:
		missing = "gap"
	case doc.Color == nil:
		missing = "color"
	case doc.Outline == nil:
		missing = "outline"
	case doc.OutlineThickness == nil:
		missing = "outline_thickness"
	case doc.OutlineColor == nil:
		missing = "outline_color"
	case doc.CenterDot == nil:
		missing = "center_dot"
	case doc.DotSize == nil:
		missing = "dot_size"
	case doc.Opacity == nil:
		missing = "opacity"
	}
	if missing != "" {
		return settings.Settings{}, fmt.Errorf("missing field %q", missing)
	}

	return settings.Settings{
		Size:             *doc.Size,
		Thickness:        *doc.Thickness,
		Gap:              *doc.Gap,
		Color:            *doc.Color,
		Outline:          *doc.Outline,
		OutlineThickness: *doc.OutlineThickness,
		OutlineColor:     *doc.OutlineColor,
		CenterDot:        *doc.CenterDot,
		DotSize:          *doc.DotSize,
		Opacity:          *doc.Opacity,
	}, nil
}
