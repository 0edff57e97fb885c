package window

import "fmt"

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4).
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnablePerMonitorDPI opts the process into per-monitor DPI awareness so
// window rectangles arrive in physical pixels. Call it once, before any
// window lookup, or scaled monitors report virtualized coordinates and
// the overlay lands in the wrong place.
func EnablePerMonitorDPI() error {
	if ProcSetProcessDpiAwarenessCtx.Find() != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not available")
	}
	r, _, _ := ProcSetProcessDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed")
	}
	return nil
}
