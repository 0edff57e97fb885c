package screen

import (
	"syscall"
	"unsafe"

	"github.com/jerryshell/windows-ez-overlay/window"
)

const (
	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCxVirtualScreen = 78
	smCyVirtualScreen = 79

	monitorPrimary = 1 // MONITORINFOF_PRIMARY
)

type rectStruct struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoExW struct {
	Size    uint32
	Monitor rectStruct
	Work    rectStruct
	Flags   uint32
	Device  [32]uint16
}

// VirtualBounds returns the bounding rectangle of the entire virtual
// desktop across all monitors.
func VirtualBounds() Rect {
	x, _, _ := window.ProcGetSystemMetrics.Call(smXVirtualScreen)
	y, _, _ := window.ProcGetSystemMetrics.Call(smYVirtualScreen)
	w, _, _ := window.ProcGetSystemMetrics.Call(smCxVirtualScreen)
	h, _, _ := window.ProcGetSystemMetrics.Call(smCyVirtualScreen)

	return Rect{
		Left:   int32(x),
		Top:    int32(y),
		Right:  int32(x) + int32(w),
		Bottom: int32(y) + int32(h),
	}
}

// Monitors returns all active monitors.
func Monitors() []Monitor {
	var monitors []Monitor

	cb := syscall.NewCallback(func(hMonitor, hdcMonitor, lprcMonitor, dwData uintptr) uintptr {
		var mi monitorInfoExW
		mi.Size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := window.ProcGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			monitors = append(monitors, Monitor{
				Handle: hMonitor,
				Bounds: Rect{
					Left:   mi.Monitor.Left,
					Top:    mi.Monitor.Top,
					Right:  mi.Monitor.Right,
					Bottom: mi.Monitor.Bottom,
				},
				WorkArea: Rect{
					Left:   mi.Work.Left,
					Top:    mi.Work.Top,
					Right:  mi.Work.Right,
					Bottom: mi.Work.Bottom,
				},
				Primary: mi.Flags&monitorPrimary != 0,
			})
		}
		return 1
	})

	window.ProcEnumDisplayMonitors.Call(0, 0, cb, 0)
	return monitors
}

// Primary returns the primary monitor, falling back to the first
// enumerated one. ok is false when no monitor is attached.
func Primary() (m Monitor, ok bool) {
	monitors := Monitors()
	for _, mon := range monitors {
		if mon.Primary {
			return mon, true
		}
	}
	if len(monitors) > 0 {
		return monitors[0], true
	}
	return Monitor{}, false
}
