//go:build windows

package winsys

import (
	"fmt"
	"image"
	"syscall"
	"unsafe"
)

var (
	user32                       = syscall.NewLazyDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
)

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// enumCallback is created once: NewCallback allocations are never
// released and the loop enumerates on every tick.
var enumCallback = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	visible, _, _ := procIsWindowVisible.Call(hwnd)
	if visible == 0 {
		return 1 // continue enumeration
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

	var r rect
	procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))

	out := (*[]Window)(unsafe.Pointer(lparam))
	*out = append(*out, Window{
		Handle: hwnd,
		PID:    int32(pid),
		Title:  windowText(hwnd),
		Bounds: image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)),
	})
	return 1
})

type systemEnumerator struct{}

// NewEnumerator returns the native window enumerator.
func NewEnumerator() Enumerator {
	return systemEnumerator{}
}

// Windows walks the top-level window list via EnumWindows, which yields
// windows in z-order, topmost first. Invisible windows are skipped.
func (systemEnumerator) Windows() ([]Window, error) {
	var out []Window
	ret, _, err := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&out)))
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %v", err)
	}
	return out, nil
}

// windowText reads a window's title. Windows without a title yield the
// empty string, which Locate treats as untitled.
func windowText(hwnd uintptr) string {
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(
		hwnd,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:n])
}
