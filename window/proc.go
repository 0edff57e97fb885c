// Package window wraps the Win32 calls the overlay needs: the lazy proc
// table shared by the whole module, plus helpers to locate and measure
// the target window the overlay is laid over.
package window

import (
	"syscall"
)

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	gdi32    = syscall.NewLazyDLL("gdi32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	// Target window lookup and state.
	ProcFindWindowW              = user32.NewProc("FindWindowW")
	ProcEnumWindows              = user32.NewProc("EnumWindows")
	ProcGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	ProcIsWindow                 = user32.NewProc("IsWindow")
	ProcIsWindowVisible          = user32.NewProc("IsWindowVisible")
	ProcIsIconic                 = user32.NewProc("IsIconic")
	ProcGetWindowRect            = user32.NewProc("GetWindowRect")
	ProcGetClientRect            = user32.NewProc("GetClientRect")

	// Overlay window lifecycle.
	ProcRegisterClassExW           = user32.NewProc("RegisterClassExW")
	ProcCreateWindowExW            = user32.NewProc("CreateWindowExW")
	ProcDestroyWindow              = user32.NewProc("DestroyWindow")
	ProcDefWindowProcW             = user32.NewProc("DefWindowProcW")
	ProcSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")

	// Message pump.
	ProcPeekMessageW     = user32.NewProc("PeekMessageW")
	ProcTranslateMessage = user32.NewProc("TranslateMessage")
	ProcDispatchMessageW = user32.NewProc("DispatchMessageW")
	ProcPostQuitMessage  = user32.NewProc("PostQuitMessage")
	ProcPostMessageW     = user32.NewProc("PostMessageW")

	// Painting.
	ProcGetDC     = user32.NewProc("GetDC")
	ProcReleaseDC = user32.NewProc("ReleaseDC")
	ProcFillRect  = user32.NewProc("FillRect")

	// Monitors.
	ProcGetSystemMetrics    = user32.NewProc("GetSystemMetrics")
	ProcEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	ProcGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")

	// DPI awareness (Win10+).
	ProcSetProcessDpiAwarenessCtx = user32.NewProc("SetProcessDpiAwarenessContext")

	ProcCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	ProcCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	ProcCreateDIBSection       = gdi32.NewProc("CreateDIBSection")
	ProcCreatePen              = gdi32.NewProc("CreatePen")
	ProcGetStockObject         = gdi32.NewProc("GetStockObject")
	ProcSelectObject           = gdi32.NewProc("SelectObject")
	ProcDeleteObject           = gdi32.NewProc("DeleteObject")
	ProcDeleteDC               = gdi32.NewProc("DeleteDC")
	ProcBitBlt                 = gdi32.NewProc("BitBlt")
	ProcRectangle              = gdi32.NewProc("Rectangle")
	ProcMoveToEx               = gdi32.NewProc("MoveToEx")
	ProcLineTo                 = gdi32.NewProc("LineTo")

	ProcGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)
