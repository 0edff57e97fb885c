package window

import (
	"fmt"
	"syscall"
	"unsafe"
)

func utf16Ptr(s string) *uint16 {
	ptr, _ := syscall.UTF16PtrFromString(s)
	return ptr
}

// FindByTitle returns the handle of the first top-level window with an
// exactly matching title.
func FindByTitle(title string) (uintptr, error) {
	hwnd, _, _ := ProcFindWindowW.Call(
		0,
		uintptr(unsafe.Pointer(utf16Ptr(title))),
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("no window with title %q", title)
	}
	return hwnd, nil
}

// FindByClass returns the handle of the first top-level window of the
// given window class.
func FindByClass(class string) (uintptr, error) {
	hwnd, _, _ := ProcFindWindowW.Call(
		uintptr(unsafe.Pointer(utf16Ptr(class))),
		0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("no window with class %q", class)
	}
	return hwnd, nil
}

// FindByPID returns the handles of all top-level windows owned by the
// given process.
func FindByPID(targetPID uint32) ([]uintptr, error) {
	var hwnds []uintptr

	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		var pid uint32
		ProcGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
		if pid == targetPID {
			hwnds = append(hwnds, hwnd)
		}
		return 1
	})
	ProcEnumWindows.Call(cb, 0)

	if len(hwnds) == 0 {
		return nil, fmt.Errorf("no windows for pid %d", targetPID)
	}
	return hwnds, nil
}
