package window

// IsValid reports whether hwnd still refers to an existing window.
func IsValid(hwnd uintptr) bool {
	r, _, _ := ProcIsWindow.Call(hwnd)
	return r != 0
}

// IsVisible reports whether the window is shown.
func IsVisible(hwnd uintptr) bool {
	r, _, _ := ProcIsWindowVisible.Call(hwnd)
	return r != 0
}

// IsIconic reports whether the window is minimized.
func IsIconic(hwnd uintptr) bool {
	r, _, _ := ProcIsIconic.Call(hwnd)
	return r != 0
}
