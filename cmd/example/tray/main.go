// Demo: overlay controlled from a system tray menu.
package main

import (
	"log"
	"time"

	"github.com/getlantern/systray"

	overlay "github.com/jerryshell/windows-ez-overlay"
	"github.com/jerryshell/windows-ez-overlay/screen"
	"github.com/jerryshell/windows-ez-overlay/window"
)

var (
	ov    *overlay.Overlay
	store *overlay.RectStore
	done  = make(chan error, 1)
)

func main() {
	if err := window.EnablePerMonitorDPI(); err != nil {
		log.Printf("dpi awareness: %v", err)
	}

	mon, ok := screen.Primary()
	if !ok {
		log.Fatal("no monitor attached")
	}
	b := mon.Bounds

	store = overlay.NewRectStore(
		overlay.Rect{Left: 100, Top: 100, Right: 300, Bottom: 250},
		overlay.Rect{Left: 400, Top: 300, Right: 520, Bottom: 420},
	)

	var err error
	ov, err = overlay.New(b.Left, b.Top, b.Right, b.Bottom, store, 60, false)
	if err != nil {
		log.Fatal(err)
	}

	systray.Run(onReady, onExit)
}

func onReady() {
	systray.SetIcon(icon())
	systray.SetTitle("EZ Overlay")
	systray.SetTooltip("EZ Overlay demo")

	mClear := systray.AddMenuItem("Clear rectangles", "Empty the shape list")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Stop the overlay and exit")

	go func() { done <- ov.WindowLoop() }()

	go func() {
		for {
			select {
			case <-mClear.ClickedCh:
				store.Set(nil)
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			case err := <-done:
				if err != nil {
					log.Printf("overlay: %v", err)
				}
				systray.Quit()
				return
			}
		}
	}()
}

func onExit() {
	ov.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
	}
}

// icon builds a 16x16 32-bit ICO in memory: an orange square outline on a
// transparent field, the overlay's own motif.
func icon() []byte {
	const (
		width  = 16
		height = 16
	)

	imageSize := width * height * 4
	bmpHeaderSize := 40
	total := bmpHeaderSize + imageSize

	buf := []byte{
		// ICONDIR
		0x00, 0x00,
		0x01, 0x00, // type: icon
		0x01, 0x00, // one image
		// ICONDIRENTRY
		width, height,
		0x00, 0x00,
		0x01, 0x00, // planes
		0x20, 0x00, // 32bpp
		byte(total), byte(total >> 8), byte(total >> 16), byte(total >> 24),
		0x16, 0x00, 0x00, 0x00, // image data offset
		// BITMAPINFOHEADER
		0x28, 0x00, 0x00, 0x00,
		width, 0x00, 0x00, 0x00,
		height * 2, 0x00, 0x00, 0x00, // doubled for the AND mask
		0x01, 0x00,
		0x20, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	// Pixel rows, bottom-up BGRA.
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			onEdge := x == 1 || x == width-2 || y == 1 || y == height-2
			inset := x >= 1 && x <= width-2 && y >= 1 && y <= height-2
			if onEdge && inset {
				buf = append(buf, 0x35, 0x61, 0xEB, 0xFF) // orange, opaque
			} else {
				buf = append(buf, 0x00, 0x00, 0x00, 0x00)
			}
		}
	}
	return buf
}
