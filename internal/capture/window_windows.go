//go:build windows

package capture

import (
	"fmt"
	"image"
	"syscall"
	"unsafe"

	"github.com/snapvault/snapvault/internal/winsys"
)

var (
	user32                     = syscall.NewLazyDLL("user32.dll")
	gdi32                      = syscall.NewLazyDLL("gdi32.dll")
	procGetDC                  = user32.NewProc("GetDC")
	procReleaseDC              = user32.NewProc("ReleaseDC")
	procGetClientRect          = user32.NewProc("GetClientRect")
	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procBitBlt                 = gdi32.NewProc("BitBlt")
	procDeleteDC               = gdi32.NewProc("DeleteDC")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procGetDIBits              = gdi32.NewProc("GetDIBits")
)

const (
	srcCopy      = 0x00CC0020
	biRGB        = 0
	dibRGBColors = 0
)

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

// windowCapturer reads the window's client area through GDI. It holds
// no per-window state: dimensions are re-read on every call because the
// target window can resize or be recreated between frames.
type windowCapturer struct{}

func newWindowCapturer() (Capturer, error) {
	return windowCapturer{}, nil
}

func (windowCapturer) CaptureWindow(win winsys.Window) (*image.RGBA, error) {
	if win.Handle == 0 {
		return nil, fmt.Errorf("invalid window handle")
	}

	var r rect
	ret, _, err := procGetClientRect.Call(win.Handle, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return nil, fmt.Errorf("failed to get client rect: %v", err)
	}
	width := int(r.Right - r.Left)
	height := int(r.Bottom - r.Top)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window dimensions: %dx%d", width, height)
	}

	hdcWindow, _, err := procGetDC.Call(win.Handle)
	if hdcWindow == 0 {
		return nil, fmt.Errorf("failed to get window DC: %v", err)
	}
	defer procReleaseDC.Call(win.Handle, hdcWindow)

	hdcMem, _, err := procCreateCompatibleDC.Call(hdcWindow)
	if hdcMem == 0 {
		return nil, fmt.Errorf("failed to create compatible DC: %v", err)
	}
	defer procDeleteDC.Call(hdcMem)

	hBitmap, _, err := procCreateCompatibleBitmap.Call(hdcWindow, uintptr(width), uintptr(height))
	if hBitmap == 0 {
		return nil, fmt.Errorf("failed to create compatible bitmap: %v", err)
	}
	defer procDeleteObject.Call(hBitmap)

	procSelectObject.Call(hdcMem, hBitmap)

	ret, _, err = procBitBlt.Call(
		hdcMem,
		0, 0,
		uintptr(width), uintptr(height),
		hdcWindow,
		0, 0,
		srcCopy,
	)
	if ret == 0 {
		return nil, fmt.Errorf("BitBlt failed: %v", err)
	}

	var bi bitmapInfo
	bi.Header.Size = uint32(unsafe.Sizeof(bi.Header))
	bi.Header.Width = int32(width)
	bi.Header.Height = -int32(height) // negative for top-down rows
	bi.Header.Planes = 1
	bi.Header.BitCount = 32
	bi.Header.Compression = biRGB

	buffer := make([]byte, width*height*4)
	ret, _, err = procGetDIBits.Call(
		hdcMem,
		hBitmap,
		0,
		uintptr(height),
		uintptr(unsafe.Pointer(&buffer[0])),
		uintptr(unsafe.Pointer(&bi)),
		dibRGBColors,
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetDIBits failed: %v", err)
	}

	// GDI hands back BGRA.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(buffer); i += 4 {
		img.Pix[i] = buffer[i+2]
		img.Pix[i+1] = buffer[i+1]
		img.Pix[i+2] = buffer[i]
		img.Pix[i+3] = buffer[i+3]
	}

	return img, nil
}
