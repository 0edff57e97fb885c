package overlay

import "sync"

// Rect is a rectangle in the overlay's client coordinates, matching the
// Win32 RECT layout. No ordering of the edges is enforced; degenerate
// rectangles simply produce no visible output.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns Right - Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// RectStore is the shared shape list the overlay renders each frame.
// Any number of producer goroutines may mutate it while the frame loop
// reads it; a single reader-writer lock guards the list. The store owns
// its copies, so callers can reuse the slices they pass in.
type RectStore struct {
	mu    sync.RWMutex
	rects []Rect
}

// NewRectStore creates a store holding a copy of the given rectangles.
func NewRectStore(rects ...Rect) *RectStore {
	s := &RectStore{}
	if len(rects) > 0 {
		s.rects = append([]Rect(nil), rects...)
	}
	return s
}

// Set replaces the whole list with a copy of rects.
func (s *RectStore) Set(rects []Rect) {
	copied := append([]Rect(nil), rects...)
	s.mu.Lock()
	s.rects = copied
	s.mu.Unlock()
}

// Update runs fn with exclusive access to the list; fn's return value
// becomes the new list. fn must not block on unrelated work, the frame
// loop cannot read while it runs.
func (s *RectStore) Update(fn func(rects []Rect) []Rect) {
	s.mu.Lock()
	s.rects = fn(s.rects)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current list. The painter reads exactly
// one snapshot per frame, so it never observes a partially written list.
func (s *RectStore) Snapshot() []Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Rect(nil), s.rects...)
}

// Len returns the number of rectangles currently stored.
func (s *RectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rects)
}
