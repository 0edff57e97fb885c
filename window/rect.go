package window

import (
	"fmt"
	"unsafe"
)

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// GetWindowRect returns the window's bounding rectangle in screen
// coordinates, the region an overlay should cover.
func GetWindowRect(hwnd uintptr) (left, top, right, bottom int32, err error) {
	var rc rect
	r, _, _ := ProcGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return 0, 0, 0, 0, fmt.Errorf("GetWindowRect failed for hwnd %#x", hwnd)
	}
	return rc.Left, rc.Top, rc.Right, rc.Bottom, nil
}

// GetClientRect returns the size of the window's client area.
func GetClientRect(hwnd uintptr) (width, height int32, err error) {
	var rc rect
	r, _, _ := ProcGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return 0, 0, fmt.Errorf("GetClientRect failed for hwnd %#x", hwnd)
	}
	return rc.Right - rc.Left, rc.Bottom - rc.Top, nil
}
