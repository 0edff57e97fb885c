package overlay

import (
	"bytes"
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/jerryshell/windows-ez-overlay/window"
)

const dibRGBColors = 0

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// captureClient copies the overlay's painted surface into a top-down
// BGRA buffer via a DIB section, the read-back counterpart of the
// painter's BitBlt.
func captureClient(t *testing.T, hwnd uintptr, width, height int32) []byte {
	t.Helper()

	hdc, _, _ := window.ProcGetDC.Call(hwnd)
	if hdc == 0 {
		t.Fatal("GetDC failed")
	}
	defer window.ProcReleaseDC.Call(hwnd, hdc)

	memDC, _, _ := window.ProcCreateCompatibleDC.Call(hdc)
	if memDC == 0 {
		t.Fatal("CreateCompatibleDC failed")
	}
	defer window.ProcDeleteDC.Call(memDC)

	bmi := bitmapInfoHeader{
		Width:    width,
		Height:   -height, // top-down
		Planes:   1,
		BitCount: 32,
	}
	bmi.Size = uint32(unsafe.Sizeof(bmi))

	var bits unsafe.Pointer
	bitmap, _, _ := window.ProcCreateDIBSection.Call(memDC,
		uintptr(unsafe.Pointer(&bmi)), dibRGBColors,
		uintptr(unsafe.Pointer(&bits)), 0, 0)
	if bitmap == 0 {
		t.Fatal("CreateDIBSection failed")
	}
	defer window.ProcDeleteObject.Call(bitmap)

	oldBitmap, _, _ := window.ProcSelectObject.Call(memDC, bitmap)
	defer window.ProcSelectObject.Call(memDC, oldBitmap)

	if r, _, _ := window.ProcBitBlt.Call(memDC,
		0, 0, uintptr(width), uintptr(height), hdc, 0, 0, SRCCOPY); r == 0 {
		t.Fatal("BitBlt failed")
	}

	total := int(width) * int(height) * 4
	out := make([]byte, total)
	copy(out, unsafe.Slice((*byte)(bits), total))
	return out
}

// colored reports whether the pixel at (x, y) is off the black color key.
// The alpha byte is ignored, BitBlt does not carry it.
func colored(buf []byte, width, x, y int32) bool {
	i := (int(y)*int(width) + int(x)) * 4
	return buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0
}

func anyColored(buf []byte, width, x0, x1, y0, y1 int32) bool {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if colored(buf, width, x, y) {
				return true
			}
		}
	}
	return false
}

// TestPaintSurface verifies the rendered output of a live session: an
// empty store leaves the whole surface on the color key, a single
// rectangle produces stroke-colored pixels only along its outline, and
// repainting an unchanged store is pixel-identical. Skipped when the
// session cannot create windows.
func TestPaintSurface(t *testing.T) {
	const (
		width  = 200
		height = 150
	)

	store := NewRectStore()
	ov, err := New(0, 0, width, height, store, 60, false)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- ov.WindowLoop() }()
	defer func() {
		ov.Stop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("WindowLoop did not return after Stop")
		}
	}()

	var hwnd uintptr
	for i := 0; i < 100 && hwnd == 0; i++ {
		select {
		case err := <-done:
			done <- err
			if errors.Is(err, ErrWindowCreation) {
				t.Skipf("no interactive window station: %v", err)
			}
			t.Fatalf("loop exited early: %v", err)
		case <-time.After(10 * time.Millisecond):
			hwnd = ov.hwnd.Load()
		}
	}
	if hwnd == 0 {
		t.Fatal("overlay window never appeared")
	}

	settle := func() { time.Sleep(5 * ov.Interval()) }
	settle()

	// Empty store: the surface is entirely on the color key.
	buf := captureClient(t, hwnd, width, height)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			if colored(buf, width, x, y) {
				t.Fatalf("empty store painted pixel at (%d, %d)", x, y)
			}
		}
	}

	// One rectangle: stroke pixels on the outline, color key everywhere
	// else. The tolerance band absorbs the pen width straddling the
	// rectangle's edges.
	target := Rect{Left: 10, Top: 10, Right: 50, Bottom: 50}
	store.Set([]Rect{target})
	settle()

	buf = captureClient(t, hwnd, width, height)

	const band = 3
	near := func(v, edge int32) bool { return v >= edge-band && v <= edge+band }
	onOutline := func(x, y int32) bool {
		if x < target.Left-band || x > target.Right+band ||
			y < target.Top-band || y > target.Bottom+band {
			return false
		}
		return near(x, target.Left) || near(x, target.Right) ||
			near(y, target.Top) || near(y, target.Bottom)
	}

	wantB := byte(53)
	wantG := byte(97)
	wantR := byte(235)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			if !colored(buf, width, x, y) {
				continue
			}
			if !onOutline(x, y) {
				t.Fatalf("stray pixel at (%d, %d), outside the outline", x, y)
			}
			i := (int(y)*int(width) + int(x)) * 4
			if buf[i] != wantB || buf[i+1] != wantG || buf[i+2] != wantR {
				t.Fatalf("pixel (%d, %d) = BGR(%d, %d, %d), want stroke BGR(%d, %d, %d)",
					x, y, buf[i], buf[i+1], buf[i+2], wantB, wantG, wantR)
			}
		}
	}

	cx := target.Left + target.Width()/2
	cy := target.Top + target.Height()/2
	edges := []struct {
		name           string
		x0, x1, y0, y1 int32
	}{
		{"top", cx, cx, target.Top - band, target.Top + band},
		{"bottom", cx, cx, target.Bottom - band, target.Bottom + band},
		{"left", target.Left - band, target.Left + band, cy, cy},
		{"right", target.Right - band, target.Right + band, cy, cy},
	}
	for _, e := range edges {
		if !anyColored(buf, width, e.x0, e.x1, e.y0, e.y1) {
			t.Errorf("no stroke pixel on the %s edge", e.name)
		}
	}
	if colored(buf, width, cx, cy) {
		t.Error("rectangle interior is filled, want outline only")
	}

	// Idempotence: repainting the unchanged store is bit-identical.
	settle()
	again := captureClient(t, hwnd, width, height)
	if !bytes.Equal(buf, again) {
		t.Error("repaint of an unchanged store differs from the previous frame")
	}
}
