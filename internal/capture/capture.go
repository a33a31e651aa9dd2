// Package capture produces pixel buffers for a located window.
package capture

import (
	"fmt"
	"image"

	"github.com/snapvault/snapvault/internal/winsys"
)

// Capturer grabs the current contents of a window. Implementations must
// tolerate the window moving or resizing between calls; nothing is
// cached across frames.
type Capturer interface {
	CaptureWindow(win winsys.Window) (*image.RGBA, error)
}

// Method selects a capture backend.
type Method string

const (
	// MethodWindow reads pixels from the window surface itself
	// (Windows GDI). Unavailable off Windows.
	MethodWindow Method = "window"
	// MethodBounds grabs the screen rectangle the window occupies.
	// Works anywhere the display can be captured, but includes anything
	// drawn over the window.
	MethodBounds Method = "bounds"
)

// New returns the capturer for the requested method.
func New(method Method) (Capturer, error) {
	switch method {
	case MethodWindow:
		return newWindowCapturer()
	case MethodBounds:
		return BoundsCapturer{}, nil
	default:
		return nil, fmt.Errorf("unknown capture method %q", method)
	}
}
