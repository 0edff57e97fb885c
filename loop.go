package overlay

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/jerryshell/windows-ez-overlay/window"
)

const (
	WS_POPUP   = 0x80000000
	WS_VISIBLE = 0x10000000

	WS_EX_TOPMOST     = 0x00000008
	WS_EX_TRANSPARENT = 0x00000020
	WS_EX_TOOLWINDOW  = 0x00000080
	WS_EX_LAYERED     = 0x00080000

	CS_VREDRAW = 0x0001
	CS_HREDRAW = 0x0002

	LWA_COLORKEY = 0x0001

	PM_REMOVE = 0x0001

	WM_DESTROY = 0x0002
	WM_CLOSE   = 0x0010
	WM_QUIT    = 0x0012
)

const className = "ezOverlay"

type point struct {
	X int32
	Y int32
}

type msg struct {
	HWND    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

var (
	classOnce sync.Once
	classErr  error
)

// registerClass registers the shared overlay window class once per
// process. The class is never unregistered; Windows reclaims it on exit.
func registerClass() error {
	classOnce.Do(func() {
		name, err := syscall.UTF16PtrFromString(className)
		if err != nil {
			classErr = err
			return
		}
		instance, _, _ := window.ProcGetModuleHandleW.Call(0)
		wc := wndClassExW{
			Style:     CS_HREDRAW | CS_VREDRAW,
			WndProc:   syscall.NewCallback(wndProc),
			Instance:  instance,
			ClassName: name,
		}
		wc.Size = uint32(unsafe.Sizeof(wc))
		atom, _, _ := window.ProcRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
		if atom == 0 {
			classErr = fmt.Errorf("RegisterClassExW failed")
		}
	})
	return classErr
}

// wndProc only has to turn window destruction into WM_QUIT; painting
// happens in the frame loop, not in WM_PAINT.
func wndProc(hwnd, message, wparam, lparam uintptr) uintptr {
	if message == WM_DESTROY {
		window.ProcPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := window.ProcDefWindowProcW.Call(hwnd, message, wparam, lparam)
	return ret
}

// WindowLoop creates the overlay window and drives it until the window is
// closed, Stop is called, or a fatal error occurs. It blocks for the
// whole overlay session and is meant to run on its own goroutine; the OS
// thread is locked so the native handle never migrates.
//
// An Overlay is one-shot: once WindowLoop returns, the instance is spent
// and further calls fail. Construct a new Overlay for a new session.
//
// Per-frame paint failures are logged and the loop continues with the
// next tick. An externally invalidated window handle ends the loop with
// ErrWindowLost.
func (o *Overlay) WindowLoop() error {
	if !o.state.CompareAndSwap(stateCreated, stateRunning) {
		return fmt.Errorf("window loop already started")
	}
	defer o.state.Store(stateStopped)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := registerClass(); err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}

	name, err := syscall.UTF16PtrFromString(className)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	title, err := syscall.UTF16PtrFromString("EZ Overlay")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}

	exStyle := uintptr(WS_EX_TOPMOST | WS_EX_TRANSPARENT | WS_EX_LAYERED)
	if !o.showInTaskbar {
		exStyle |= WS_EX_TOOLWINDOW
	}

	instance, _, _ := window.ProcGetModuleHandleW.Call(0)
	hwnd, _, _ := window.ProcCreateWindowExW.Call(
		exStyle,
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(title)),
		WS_POPUP|WS_VISIBLE,
		uintptr(o.region.Left),
		uintptr(o.region.Top),
		uintptr(o.width()),
		uintptr(o.height()),
		0, 0, instance, 0,
	)
	if hwnd == 0 {
		return fmt.Errorf("%w: CreateWindowExW failed", ErrWindowCreation)
	}
	o.hwnd.Store(hwnd)
	defer func() {
		window.ProcDestroyWindow.Call(hwnd)
		o.hwnd.Store(0)
	}()

	// Black pixels become fully transparent, so the overlay never
	// occludes the target where nothing is drawn.
	if r, _, _ := window.ProcSetLayeredWindowAttributes.Call(hwnd, 0, 0, LWA_COLORKEY); r == 0 {
		return fmt.Errorf("%w: SetLayeredWindowAttributes failed", ErrWindowCreation)
	}

	var m msg
	for {
		tick := time.Now()

		for {
			got, _, _ := window.ProcPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, PM_REMOVE)
			if got == 0 {
				break
			}
			if m.Message == WM_QUIT {
				return nil
			}
			window.ProcTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
			window.ProcDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		}

		if o.stop.Load() {
			return nil
		}
		if !window.IsValid(hwnd) {
			return fmt.Errorf("%w: hwnd %#x", ErrWindowLost, hwnd)
		}

		if err := o.paint(hwnd); err != nil {
			log.Printf("overlay: frame skipped: %v", err)
		}

		if rest := o.interval - time.Since(tick); rest > 0 {
			time.Sleep(rest)
		}
	}
}
