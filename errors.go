package overlay

import "errors"

var (
	// ErrWindowCreation implies the overlay window could not be created.
	// It is returned before the frame loop starts and is fatal to the
	// overlay instance; creation is not retried.
	ErrWindowCreation = errors.New("overlay window creation failed")

	// ErrGraphicsResource implies a per-frame graphics handle could not be
	// acquired. The frame is skipped and the loop continues.
	ErrGraphicsResource = errors.New("graphics resource unavailable")

	// ErrWindowLost implies the native window handle was invalidated from
	// outside. The frame loop terminates and returns this error.
	ErrWindowLost = errors.New("overlay window handle lost")
)
