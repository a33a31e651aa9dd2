package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/snapvault/snapvault/internal/winsys"
)

// BoundsCapturer grabs the screen rectangle the window occupies. It is
// the fallback for windows GDI cannot read (hardware-accelerated
// surfaces render black through BitBlt) and the only backend on
// platforms without a window-surface API.
type BoundsCapturer struct{}

func (BoundsCapturer) CaptureWindow(win winsys.Window) (*image.RGBA, error) {
	if win.Bounds.Empty() {
		return nil, fmt.Errorf("window %q has an empty bounds rectangle", win.Title)
	}

	img, err := screenshot.CaptureRect(win.Bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture window bounds %v: %w", win.Bounds, err)
	}
	return img, nil
}
