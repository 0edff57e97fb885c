package overlay

import (
	"errors"
	"testing"
	"time"
)

func TestNewRejectsBadInput(t *testing.T) {
	store := NewRectStore()

	cases := []struct {
		name                     string
		left, top, right, bottom int32
		store                    *RectStore
	}{
		{"zero width", 100, 0, 100, 600, store},
		{"zero height", 0, 100, 800, 100, store},
		{"negative width", 800, 0, 0, 600, store},
		{"negative height", 0, 600, 800, 0, store},
		{"nil store", 0, 0, 800, 600, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.left, tc.top, tc.right, tc.bottom, tc.store, 60, false)
			if !errors.Is(err, ErrWindowCreation) {
				t.Fatalf("New(...) error = %v, want ErrWindowCreation", err)
			}
		})
	}
}

func TestNewFrameInterval(t *testing.T) {
	store := NewRectStore()

	cases := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{144, time.Second / 144},
		{1, time.Second},
		{0, time.Second / 60},   // default
		{-10, time.Second / 60}, // default
	}

	for _, tc := range cases {
		ov, err := New(0, 0, 800, 600, store, tc.rate, false)
		if err != nil {
			t.Fatalf("New(rate=%d): %v", tc.rate, err)
		}
		if ov.Interval() != tc.want {
			t.Errorf("rate %d: interval = %v, want %v", tc.rate, ov.Interval(), tc.want)
		}
	}
}

func TestRegionDimensions(t *testing.T) {
	ov, err := New(100, 200, 900, 800, NewRectStore(), 60, false)
	if err != nil {
		t.Fatal(err)
	}
	if ov.width() != 800 || ov.height() != 600 {
		t.Fatalf("window size = %dx%d, want 800x600", ov.width(), ov.height())
	}
	if ov.Region() != (Rect{Left: 100, Top: 200, Right: 900, Bottom: 800}) {
		t.Fatalf("Region = %+v", ov.Region())
	}
}

func TestRGBColorref(t *testing.T) {
	cases := []struct {
		r, g, b byte
		want    uint32
	}{
		{0, 0, 0, 0x000000},
		{255, 0, 0, 0x0000FF},
		{0, 255, 0, 0x00FF00},
		{0, 0, 255, 0xFF0000},
		{235, 97, 53, 0x3561EB},
	}
	for _, tc := range cases {
		if got := RGB(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("RGB(%d, %d, %d) = %#08x, want %#08x", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestSetStroke(t *testing.T) {
	ov, err := New(0, 0, 800, 600, NewRectStore(), 60, false)
	if err != nil {
		t.Fatal(err)
	}

	if ov.strokeColor != RGB(235, 97, 53) || ov.strokeWidth != 2 {
		t.Fatalf("defaults = color %#x width %d", ov.strokeColor, ov.strokeWidth)
	}

	ov.SetStroke(RGB(0, 255, 0), 4)
	if ov.strokeColor != RGB(0, 255, 0) || ov.strokeWidth != 4 {
		t.Fatalf("after SetStroke: color %#x width %d", ov.strokeColor, ov.strokeWidth)
	}

	// A non-positive width keeps the previous value.
	ov.SetStroke(RGB(0, 255, 0), 0)
	if ov.strokeWidth != 4 {
		t.Fatalf("width after SetStroke(_, 0) = %d, want 4", ov.strokeWidth)
	}
}

// TestWindowLoopSingleUse covers the lifecycle guard without needing a
// window station: a loop that is running or already finished refuses to
// start again.
func TestWindowLoopSingleUse(t *testing.T) {
	for _, state := range []int32{stateRunning, stateStopped} {
		ov, err := New(0, 0, 800, 600, NewRectStore(), 60, false)
		if err != nil {
			t.Fatal(err)
		}
		ov.state.Store(state)
		if err := ov.WindowLoop(); err == nil {
			t.Fatalf("WindowLoop started from state %d, want refusal", state)
		}
	}
}

// TestWindowLoopStop runs a live overlay session: the loop on its own
// goroutine, a producer mutating the store every tick, then Stop. Skipped
// when the session cannot create windows (headless CI).
func TestWindowLoopStop(t *testing.T) {
	store := NewRectStore(Rect{Left: 10, Top: 10, Right: 50, Bottom: 50})
	ov, err := New(0, 0, 800, 600, store, 60, false)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- ov.WindowLoop() }()

	ticker := time.NewTicker(ov.Interval())
	defer ticker.Stop()
	for i := 0; i < 30; i++ {
		select {
		case err := <-done:
			if errors.Is(err, ErrWindowCreation) {
				t.Skipf("no interactive window station: %v", err)
			}
			t.Fatalf("loop exited early: %v", err)
		case <-ticker.C:
			store.Update(func(rects []Rect) []Rect {
				for j := range rects {
					rects[j].Left++
					rects[j].Right++
				}
				return rects
			})
		}
	}

	ov.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WindowLoop returned %v after Stop", err)
		}
	case <-time.After(time.Second):
		t.Fatal("WindowLoop did not return within a second of Stop")
	}

	// The Overlay is spent; it must not open a second window.
	if err := ov.WindowLoop(); err == nil {
		t.Fatal("WindowLoop restarted after Stop, Overlay is one-shot")
	}
}
