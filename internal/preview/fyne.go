package preview

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// FyneSurface shows frames in a fyne window. Key presses are forwarded
// through a one-slot channel; AwaitKey is the single consumer and there
// is no timeout, so the loop blocks exactly as long as the operator
// takes to decide.
type FyneSurface struct {
	window fyne.Window
	view   *canvas.Image
	keys   chan Key
	closed chan struct{}
}

// NewFyneSurface builds the preview window. The window stays hidden
// until ShowWindow or the first frame; the caller owns the fyne event
// loop (app.Run on the main goroutine).
func NewFyneSurface(app fyne.App, title string) *FyneSurface {
	view := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	view.FillMode = canvas.ImageFillContain

	window := app.NewWindow(title)
	window.SetContent(view)
	window.Resize(fyne.NewSize(640, 480))

	s := &FyneSurface{
		window: window,
		view:   view,
		keys:   make(chan Key, 1),
		closed: make(chan struct{}),
	}

	window.Canvas().SetOnTypedRune(func(r rune) {
		s.offer(Key(r))
	})
	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		key, ok := namedKeyCode(ev.Name)
		if !ok {
			return
		}
		s.offer(key)
	})
	window.SetOnClosed(func() {
		close(s.closed)
	})

	return s
}

// offer hands a key to the waiting loop. If the loop is not waiting,
// the key is dropped rather than queued as a stale decision.
func (s *FyneSurface) offer(key Key) {
	select {
	case s.keys <- key:
	default:
	}
}

// namedKeyCode translates a non-printable key press so that every key
// advances the loop, not just the printable ones. Keys that also fire
// the rune handler (letters, digits, space) are rejected here; they
// would otherwise be delivered twice per press.
func namedKeyCode(name fyne.KeyName) (Key, bool) {
	if len(name) == 1 || name == fyne.KeySpace {
		return 0, false
	}
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return Key('\r'), true
	case fyne.KeyTab:
		return Key('\t'), true
	case fyne.KeyEscape:
		return Key(27), true
	case fyne.KeyBackspace:
		return Key(8), true
	case fyne.KeyDelete:
		return Key(127), true
	}
	return Key(0), true
}

// ShowWindow presents the (still empty) preview window so the operator
// sees that the tool is running while it searches for the target.
func (s *FyneSurface) ShowWindow() {
	s.window.Show()
}

// Show replaces the displayed frame. Called from the capture goroutine,
// so the widget updates are marshalled onto the fyne thread.
func (s *FyneSurface) Show(frame image.Image) error {
	if frame == nil {
		return errors.New("cannot display nil frame")
	}
	select {
	case <-s.closed:
		return ErrSurfaceClosed
	default:
	}

	bounds := frame.Bounds()
	fyne.Do(func() {
		s.view.Image = frame
		s.view.Refresh()
		s.window.Resize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
		s.window.Show()
	})
	return nil
}

// AwaitKey blocks until the operator presses a key or closes the
// window.
func (s *FyneSurface) AwaitKey() (Key, error) {
	select {
	case key := <-s.keys:
		return key, nil
	case <-s.closed:
		return 0, ErrSurfaceClosed
	}
}
