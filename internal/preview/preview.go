// Package preview shows captured frames to the operator and collects
// the key decisions that pace the capture loop.
package preview

import (
	"errors"
	"image"
)

// Key is an operator key code. Printable keys carry their rune value.
type Key int

// KeyQuit terminates the capture loop ('q', code 113). Any other key
// advances to the next frame.
const KeyQuit Key = 113

// ErrSurfaceClosed indicates the operator closed the preview window;
// the loop treats it like a quit.
var ErrSurfaceClosed = errors.New("preview surface closed")

// Surface is the operator-facing display. Show presents the latest
// frame; AwaitKey blocks without timeout until the operator presses a
// key. AwaitKey is the loop's only suspension point.
type Surface interface {
	Show(frame image.Image) error
	AwaitKey() (Key, error)
}

// Headless is a Surface for displayless operation: frames are dropped
// and the loop auto-advances until Frames captures have been taken,
// then the quit key is synthesized. Zero or negative Frames quits after
// the first frame.
type Headless struct {
	Frames int
	served int
}

func (h *Headless) Show(image.Image) error {
	return nil
}

func (h *Headless) AwaitKey() (Key, error) {
	h.served++
	if h.served >= h.Frames {
		return KeyQuit, nil
	}
	return Key(' '), nil
}
