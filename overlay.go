package overlay

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jerryshell/windows-ez-overlay/window"
)

const (
	defaultRefreshRate = 60
	defaultStrokeWidth = 2
)

// Overlay lifecycle: Created until WindowLoop starts, Running while it
// owns the window, Stopped once it returns. The transition is one-way.
const (
	stateCreated int32 = iota
	stateRunning
	stateStopped
)

// Overlay owns a transparent, topmost, click-through window bound to a
// fixed screen region. Construct it with New, then run WindowLoop on a
// dedicated goroutine; the native handle and all graphics resources stay
// on that goroutine's thread for the whole session.
type Overlay struct {
	region        Rect
	store         *RectStore
	interval      time.Duration
	showInTaskbar bool

	strokeColor    uint32
	strokeWidth    int32
	drawBottomLine bool

	hwnd  atomic.Uintptr
	state atomic.Int32
	stop  atomic.Bool
}

// New validates the region and prepares an overlay covering the screen
// rectangle (left, top, right, bottom). The store is shared with the
// caller's producers. refreshRate is in frames per second; values <= 0
// fall back to 60. showInTaskbar controls whether the overlay appears in
// the taskbar and window switcher.
//
// A zero or negative sized region fails with ErrWindowCreation.
func New(left, top, right, bottom int32, store *RectStore, refreshRate int, showInTaskbar bool) (*Overlay, error) {
	if right <= left || bottom <= top {
		return nil, fmt.Errorf("%w: empty region (%d, %d, %d, %d)", ErrWindowCreation, left, top, right, bottom)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: nil rect store", ErrWindowCreation)
	}
	if refreshRate <= 0 {
		refreshRate = defaultRefreshRate
	}
	return &Overlay{
		region:        Rect{Left: left, Top: top, Right: right, Bottom: bottom},
		store:         store,
		interval:      time.Second / time.Duration(refreshRate),
		showInTaskbar: showInTaskbar,
		strokeColor:   RGB(235, 97, 53),
		strokeWidth:   defaultStrokeWidth,
	}, nil
}

// RGB packs a color into the COLORREF layout (0x00BBGGRR).
func RGB(r, g, b byte) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16
}

// SetStroke overrides the outline color and width. The default is
// RGB(235, 97, 53) at width 2. Black is the transparency color key and
// will not be visible. Call before WindowLoop.
func (o *Overlay) SetStroke(color uint32, width int32) {
	o.strokeColor = color
	if width > 0 {
		o.strokeWidth = width
	}
}

// SetDrawBottomLine enables a tracker line from the bottom center of the
// overlay to the bottom center of every rectangle. Call before WindowLoop.
func (o *Overlay) SetDrawBottomLine(draw bool) {
	o.drawBottomLine = draw
}

// Interval returns the frame interval derived from the refresh rate.
func (o *Overlay) Interval() time.Duration {
	return o.interval
}

// Region returns the screen rectangle the overlay covers.
func (o *Overlay) Region() Rect {
	return o.region
}

// Stop asks the frame loop to exit. Safe to call from any goroutine; the
// loop observes the flag at the top of its next iteration, so WindowLoop
// returns within one frame interval. A close message is also posted to
// the window so an idle loop wakes without waiting out its sleep.
func (o *Overlay) Stop() {
	o.stop.Store(true)
	if hwnd := o.hwnd.Load(); hwnd != 0 {
		window.ProcPostMessageW.Call(hwnd, WM_CLOSE, 0, 0)
	}
}

func (o *Overlay) width() int32  { return o.region.Right - o.region.Left }
func (o *Overlay) height() int32 { return o.region.Bottom - o.region.Top }
