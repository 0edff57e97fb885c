package overlay

import (
	"fmt"
	"unsafe"

	"github.com/jerryshell/windows-ez-overlay/window"
)

const (
	PS_SOLID = 0x0000
	SRCCOPY  = 0x00CC0020

	BLACK_BRUSH = 4
	NULL_BRUSH  = 5
)

// paint renders one frame: clear an off-screen buffer to the transparency
// color key, stroke every rectangle from one store snapshot, then blit
// the buffer to the window in a single BitBlt. Every handle acquired here
// is released before returning, on every path.
func (o *Overlay) paint(hwnd uintptr) error {
	width, height := o.width(), o.height()

	hdc, _, _ := window.ProcGetDC.Call(hwnd)
	if hdc == 0 {
		return fmt.Errorf("%w: GetDC", ErrGraphicsResource)
	}
	defer window.ProcReleaseDC.Call(hwnd, hdc)

	memDC, _, _ := window.ProcCreateCompatibleDC.Call(hdc)
	if memDC == 0 {
		return fmt.Errorf("%w: CreateCompatibleDC", ErrGraphicsResource)
	}
	defer window.ProcDeleteDC.Call(memDC)

	buffer, _, _ := window.ProcCreateCompatibleBitmap.Call(hdc, uintptr(width), uintptr(height))
	if buffer == 0 {
		return fmt.Errorf("%w: CreateCompatibleBitmap", ErrGraphicsResource)
	}
	defer window.ProcDeleteObject.Call(buffer)

	oldBitmap, _, _ := window.ProcSelectObject.Call(memDC, buffer)
	defer window.ProcSelectObject.Call(memDC, oldBitmap)

	// Clearing to black, the layered color key, leaves the window fully
	// transparent wherever nothing else is drawn.
	bounds := Rect{Left: 0, Top: 0, Right: width, Bottom: height}
	black, _, _ := window.ProcGetStockObject.Call(BLACK_BRUSH)
	window.ProcFillRect.Call(memDC, uintptr(unsafe.Pointer(&bounds)), black)

	pen, _, _ := window.ProcCreatePen.Call(PS_SOLID, uintptr(o.strokeWidth), uintptr(o.strokeColor))
	if pen == 0 {
		return fmt.Errorf("%w: CreatePen", ErrGraphicsResource)
	}
	defer window.ProcDeleteObject.Call(pen)

	oldPen, _, _ := window.ProcSelectObject.Call(memDC, pen)
	defer window.ProcSelectObject.Call(memDC, oldPen)

	// The hollow brush keeps rectangle interiors on the color key, so
	// only the outlines are visible.
	hollow, _, _ := window.ProcGetStockObject.Call(NULL_BRUSH)
	oldBrush, _, _ := window.ProcSelectObject.Call(memDC, hollow)
	defer window.ProcSelectObject.Call(memDC, oldBrush)

	for _, r := range o.store.Snapshot() {
		window.ProcRectangle.Call(memDC,
			uintptr(r.Left), uintptr(r.Top), uintptr(r.Right), uintptr(r.Bottom))
		if o.drawBottomLine {
			window.ProcMoveToEx.Call(memDC, uintptr(width/2), uintptr(height), 0)
			window.ProcLineTo.Call(memDC, uintptr(r.Left+r.Width()/2), uintptr(r.Bottom))
		}
	}

	if done, _, _ := window.ProcBitBlt.Call(hdc,
		0, 0, uintptr(width), uintptr(height), memDC, 0, 0, SRCCOPY); done == 0 {
		return fmt.Errorf("%w: BitBlt", ErrGraphicsResource)
	}
	return nil
}
