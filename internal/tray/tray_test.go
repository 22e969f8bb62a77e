package tray

import (
	"testing"

	"github.com/iburimskiy/crosssight/internal/settings"
)

func TestPushAndDrain(t *testing.T) {
	tr := New()

	tr.Push(EventShow)
	tr.Push(EventQuit)

	if got := <-tr.Events(); got != EventShow {
		t.Errorf("Expected EventShow first, got %v", got)
	}
	if got := <-tr.Events(); got != EventQuit {
		t.Errorf("Expected EventQuit second, got %v", got)
	}
}

func TestPushDropsWhenFull(t *testing.T) {
	tr := New()

	// the queue holds 8; pushing more must not block
	for i := 0; i < 20; i++ {
		tr.Push(EventShow)
	}
	if len(tr.events) != cap(tr.events) {
		t.Errorf("Expected a full queue, got %d of %d", len(tr.events), cap(tr.events))
	}
}

func TestRefreshIconBeforeStartIsNoop(t *testing.T) {
	tr := New()
	// must not touch systray before the shell registration happened
	tr.RefreshIcon(settings.Default())
	if !tr.lastIcon.IsZero() {
		t.Error("Expected no icon update before start")
	}
}
