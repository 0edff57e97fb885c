// Package screen enumerates display monitors, mostly so callers can
// overlay a whole monitor when no target window is available.
package screen

// Rect is a rectangle in Virtual Desktop coordinates. Coordinates can be
// negative (e.g. a secondary monitor left of the primary).
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Monitor describes one active display device.
type Monitor struct {
	Handle   uintptr
	Bounds   Rect
	WorkArea Rect // excludes the taskbar
	Primary  bool
}
