// Package overlay renders a transparent, click-through, always-on-top
// window over a fixed screen region and continuously redraws a shared
// list of rectangles, e.g. to visualize detected objects on top of
// another process's window.
//
// Key Features:
// - Layered window: unpainted pixels are fully transparent
// - Click-through: all pointer and keyboard input passes to whatever is beneath
// - Double-buffered GDI painting, no flicker
// - Shared RectStore safe for concurrent producers
//
// Example:
//
//	store := overlay.NewRectStore(overlay.Rect{Left: 10, Top: 10, Right: 50, Bottom: 50})
//
//	ov, err := overlay.New(0, 0, 800, 600, store, 60, false)
//	if err != nil {
//	    panic(err)
//	}
//	go func() {
//	    if err := ov.WindowLoop(); err != nil {
//	        log.Fatal(err)
//	    }
//	}()
//
//	// mutate store from any goroutine, then:
//	ov.Stop()
package overlay
