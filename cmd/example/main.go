package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	overlay "github.com/jerryshell/windows-ez-overlay"
	"github.com/jerryshell/windows-ez-overlay/screen"
	"github.com/jerryshell/windows-ez-overlay/window"
)

func main() {
	title := flag.String("title", "", "target window title; primary monitor when empty")
	rate := flag.Int("rate", 60, "refresh rate in frames per second")
	taskbar := flag.Bool("taskbar", false, "show the overlay in the taskbar")
	tracker := flag.Bool("tracker", false, "draw tracker lines to each rectangle")
	flag.Parse()

	if err := window.EnablePerMonitorDPI(); err != nil {
		log.Printf("dpi awareness: %v", err)
	}

	left, top, right, bottom, err := targetRegion(*title)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("overlay region: [%d, %d, %d, %d]\n", left, top, right, bottom)

	store := overlay.NewRectStore(
		overlay.Rect{Left: 10, Top: 10, Right: 110, Bottom: 110},
		overlay.Rect{Left: 200, Top: 150, Right: 360, Bottom: 280},
	)

	ov, err := overlay.New(left, top, right, bottom, store, *rate, *taskbar)
	if err != nil {
		log.Fatal(err)
	}
	ov.SetDrawBottomLine(*tracker)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		ov.Stop()
	}()

	go animate(store, ov.Interval(), bottom-top)

	fmt.Println("overlay running, Ctrl+C to quit")
	if err := ov.WindowLoop(); err != nil {
		log.Fatal(err)
	}
}

// targetRegion resolves the screen rectangle to cover: the named window
// when a title is given, the primary monitor otherwise.
func targetRegion(title string) (left, top, right, bottom int32, err error) {
	if title != "" {
		hwnd, err := window.FindByTitle(title)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return window.GetWindowRect(hwnd)
	}

	mon, ok := screen.Primary()
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("no monitor attached")
	}
	b := mon.Bounds
	return b.Left, b.Top, b.Right, b.Bottom, nil
}

// animate drifts every rectangle downward one pixel per frame, wrapping
// back to the top edge, to make the repaint visible.
func animate(store *overlay.RectStore, interval time.Duration, height int32) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		store.Update(func(rects []overlay.Rect) []overlay.Rect {
			for i := range rects {
				rects[i].Top++
				rects[i].Bottom++
				if rects[i].Top >= height {
					h := rects[i].Height()
					rects[i].Top = 0
					rects[i].Bottom = h
				}
			}
			return rects
		})
	}
}
