package settings

import "testing"

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if (c != RGB{R: 0xff, G: 0x80}) {
		t.Errorf("Expected {255 128 0}, got %v", c)
	}

	c, err = ParseHex("#FF8000")
	if err != nil {
		t.Fatalf("Expected upper-case hex to parse, got %v", err)
	}
	if (c != RGB{R: 0xff, G: 0x80}) {
		t.Errorf("Expected {255 128 0}, got %v", c)
	}

	for _, bad := range []string{"", "#fff", "ff8000", "#ff80zz", "#ff8000ff"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected error for %q, got none", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	colors := []RGB{
		{},
		{R: 0xff},
		{R: 0x12, G: 0x34, B: 0x56},
		{R: 0xff, G: 0xff, B: 0xff},
	}
	for _, c := range colors {
		back, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("Expected %s to parse, got %v", c.Hex(), err)
		}
		if back != c {
			t.Errorf("Expected %v after round trip, got %v", c, back)
		}
	}
}

func TestClamped(t *testing.T) {
	s := Default()
	s.Size = 500
	s.Thickness = 0
	s.Gap = -3
	s.OutlineThickness = 99
	s.DotSize = 0
	s.Opacity = 0.01

	c := s.Clamped()
	if c.Size != MaxSize {
		t.Errorf("Expected size %d, got %d", MaxSize, c.Size)
	}
	if c.Thickness != MinThickness {
		t.Errorf("Expected thickness %d, got %d", MinThickness, c.Thickness)
	}
	if c.Gap != MinGap {
		t.Errorf("Expected gap %d, got %d", MinGap, c.Gap)
	}
	if c.OutlineThickness != MaxOutlineThickness {
		t.Errorf("Expected outline thickness %d, got %d", MaxOutlineThickness, c.OutlineThickness)
	}
	if c.DotSize != MinDotSize {
		t.Errorf("Expected dot size %d, got %d", MinDotSize, c.DotSize)
	}
	if c.Opacity != MinOpacity {
		t.Errorf("Expected opacity %v, got %v", MinOpacity, c.Opacity)
	}
}

func TestDefaultIsInRange(t *testing.T) {
	d := Default()
	if d.Clamped() != d {
		t.Errorf("Expected defaults to survive clamping, got %+v", d.Clamped())
	}
}

func TestStoreUpdateNotifies(t *testing.T) {
	st := NewStore(Default())

	var got []Settings
	st.Subscribe(func(s Settings) { got = append(got, s) })

	st.Update(func(s *Settings) { s.Size = 42 })
	if len(got) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(got))
	}
	if got[0].Size != 42 {
		t.Errorf("Expected notified size 42, got %d", got[0].Size)
	}
	if st.Get().Size != 42 {
		t.Errorf("Expected stored size 42, got %d", st.Get().Size)
	}
}

func TestStoreUpdateClamps(t *testing.T) {
	st := NewStore(Default())
	st.Update(func(s *Settings) { s.Opacity = 7 })
	if st.Get().Opacity != MaxOpacity {
		t.Errorf("Expected opacity clamped to %v, got %v", MaxOpacity, st.Get().Opacity)
	}
}

func TestStoreReplace(t *testing.T) {
	st := NewStore(Default())

	calls := 0
	st.Subscribe(func(Settings) { calls++ })

	next := Default()
	next.Color = RGB{G: 0xff}
	next.Size = 1 // below range, must come back clamped
	st.Replace(next)

	if calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", calls)
	}
	if st.Get().Color != (RGB{G: 0xff}) {
		t.Errorf("Expected replaced color, got %v", st.Get().Color)
	}
	if st.Get().Size != MinSize {
		t.Errorf("Expected size clamped to %d, got %d", MinSize, st.Get().Size)
	}
}
