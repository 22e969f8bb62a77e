// Package cursor hides and restores the OS pointer while the crosshair is
// active. The pointer stays usable over the control panel and disappears
// everywhere else, so the crosshair is the only marker on screen.
package cursor

import (
	"image"

	"github.com/rs/zerolog/log"
)

var curLog = log.With().Str("module", "cursor").Logger()

// Toggler flips OS pointer visibility. The real implementation talks to the
// platform; tests plug in a counting fake.
type Toggler interface {
	Show() error
	Hide() error
}

// Decide reports whether the OS pointer should be visible for one sampled
// pointer position: only while it is over the visible control panel.
func Decide(panel image.Rectangle, panelVisible bool, pt image.Point) bool {
	return panelVisible && pt.In(panel)
}

// Controller applies visibility decisions edge-triggered: the toggler is
// called only when the desired state differs from the last applied one. A
// failed call leaves the recorded state alone, so the next poll retries.
type Controller struct {
	toggler Toggler
	visible bool
}

// NewController starts from visible, which is what the OS guarantees at
// process start.
func NewController(t Toggler) *Controller {
	return &Controller{toggler: t, visible: true}
}

// Visible returns the last successfully applied state.
func (c *Controller) Visible() bool {
	return c.visible
}

// Apply moves the pointer to the wanted state if it is not already there.
func (c *Controller) Apply(wantVisible bool) {
	if wantVisible == c.visible {
		return
	}

	var err error
	if wantVisible {
		err = c.toggler.Show()
	} else {
		err = c.toggler.Hide()
	}
	if err != nil {
		// retried every poll tick, so debug keeps the log usable
		curLog.Debug().Err(err).Bool("visible", wantVisible).Msg("pointer toggle failed, will retry")
		return
	}
	c.visible = wantVisible
}

// Restore forces the pointer back on regardless of recorded state. Called on
// every shutdown path; a hidden pointer must never outlive the process.
func (c *Controller) Restore() {
	if err := c.toggler.Show(); err != nil {
		curLog.Warn().Err(err).Msg("pointer restore failed")
	}
	c.visible = true
}
