// Package winsys locates on-screen windows by owning process and title.
// Window handles are transient native references: the enumeration is a
// point-in-time snapshot and callers must re-resolve every iteration
// rather than caching a result.
package winsys

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrWindowNotFound indicates no window in the current snapshot
	// matched the requested process and title.
	ErrWindowNotFound = errors.New("window not found")
	// ErrUnsupported indicates window enumeration is not implemented on
	// this platform.
	ErrUnsupported = errors.New("window enumeration not supported on this platform")
)

// Window is a snapshot of one top-level window. Handle is an opaque
// native token valid only as long as the window exists.
type Window struct {
	Handle uintptr
	PID    int32
	Title  string
	// Bounds is the window rectangle in screen coordinates, used by the
	// bounds-based capture backend.
	Bounds image.Rectangle
}

// Enumerator produces the current window stack in the window system's
// z-order, topmost first.
type Enumerator interface {
	Windows() ([]Window, error)
}

// Locate returns the first window in the snapshot owned by pid whose
// title exactly equals title. Untitled windows are skipped without
// error. Returns ErrWindowNotFound when nothing matches.
func Locate(enum Enumerator, pid int32, title string) (Window, error) {
	windows, err := enum.Windows()
	if err != nil {
		return Window{}, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	for _, w := range windows {
		if w.PID != pid {
			continue
		}
		if w.Title == "" {
			continue
		}
		if w.Title == title {
			return w, nil
		}
	}

	return Window{}, fmt.Errorf("pid %d title %q: %w", pid, title, ErrWindowNotFound)
}
