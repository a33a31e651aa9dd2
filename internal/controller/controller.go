// Package controller drives the interactive capture loop: locate the
// target window, capture it, persist and display the frame, then block
// for the operator's decision to continue or stop.
package controller

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/snapvault/snapvault/internal/assets"
	"github.com/snapvault/snapvault/internal/capture"
	"github.com/snapvault/snapvault/internal/encoder"
	"github.com/snapvault/snapvault/internal/logging"
	"github.com/snapvault/snapvault/internal/preview"
	"github.com/snapvault/snapvault/internal/winsys"
)

// Config wires the controller's collaborators. All fields except
// Encode and SearchInterval are required.
type Config struct {
	Logger      *logging.Logger
	Enumerator  winsys.Enumerator
	Capturer    capture.Capturer
	Store       *assets.Store
	Surface     preview.Surface
	PID         int32
	WindowTitle string
	// SearchInterval is the pause between polls while the target window
	// is missing. Zero means re-poll immediately.
	SearchInterval time.Duration
	// Encode persists a frame to a path. Defaults to encoder.WritePNG.
	Encode func(img image.Image, path string) error
}

// Controller runs the capture state machine. It is single-threaded:
// one goroutine calls Run and nothing else touches the store's counter.
type Controller struct {
	log            *logging.Logger
	enum           winsys.Enumerator
	capturer       capture.Capturer
	store          *assets.Store
	surface        preview.Surface
	pid            int32
	title          string
	searchInterval time.Duration
	encode         func(img image.Image, path string) error

	lastKey preview.Key
	frames  int
}

// New builds a controller from its collaborators.
func New(cfg Config) *Controller {
	encode := cfg.Encode
	if encode == nil {
		encode = encoder.WritePNG
	}
	return &Controller{
		log:            cfg.Logger,
		enum:           cfg.Enumerator,
		capturer:       cfg.Capturer,
		store:          cfg.Store,
		surface:        cfg.Surface,
		pid:            cfg.PID,
		title:          cfg.WindowTitle,
		searchInterval: cfg.SearchInterval,
		encode:         encode,
	}
}

// Run loops until the operator quits, the preview closes, the context
// is cancelled, or window enumeration itself fails. Frame-level
// failures (window missing this tick, capture error, encode error,
// preview error) are logged and the loop carries on; the image counter
// is not rolled back for an index whose write failed.
func (c *Controller) Run(ctx context.Context) error {
	searching := false

	for {
		if ctx.Err() != nil {
			c.log.Info("Interrupted, stopping capture")
			return nil
		}

		win, err := winsys.Locate(c.enum, c.pid, c.title)
		if err != nil {
			if errors.Is(err, winsys.ErrWindowNotFound) {
				if !searching {
					searching = true
					c.log.WarnWithFields("Target window not found, searching",
						map[string]interface{}{"pid": c.pid, "title": c.title})
				}
				if !c.pause(ctx) {
					c.log.Info("Interrupted, stopping capture")
					return nil
				}
				continue
			}
			return fmt.Errorf("window enumeration failed: %w", err)
		}
		if searching {
			searching = false
			c.log.Info("Target window found, resuming capture")
		}
		c.log.Debug("Target window located, capturing frame")

		c.captureFrame(win)

		key, err := c.surface.AwaitKey()
		if err != nil {
			if errors.Is(err, preview.ErrSurfaceClosed) {
				c.log.Info("Preview closed, stopping capture")
				return nil
			}
			return fmt.Errorf("operator input failed: %w", err)
		}
		c.lastKey = key
		if key == preview.KeyQuit {
			c.log.InfoWithFields("Quit requested",
				map[string]interface{}{"frames": c.frames})
			return nil
		}
	}
}

// captureFrame performs one Capturing transition: grab, persist,
// display. Every failure here is frame-recoverable.
func (c *Controller) captureFrame(win winsys.Window) {
	frame, err := c.capturer.CaptureWindow(win)
	if err != nil {
		c.log.Error("Frame capture failed", err)
		return
	}

	path, index := c.store.NextImagePath()
	if err := c.encode(frame, path); err != nil {
		// The allocated index is abandoned, leaving a gap in the
		// numbering; the next frame takes the next index.
		c.log.ErrorWithFields("Failed to persist frame", err,
			map[string]interface{}{"index": index})
	} else {
		c.frames++
		c.log.InfoWithFields("Frame saved",
			map[string]interface{}{"index": index, "path": path})
	}

	if err := c.surface.Show(frame); err != nil && !errors.Is(err, preview.ErrSurfaceClosed) {
		c.log.Error("Preview display failed", err)
	}
}

// pause waits out the search interval, returning false if the context
// is cancelled first.
func (c *Controller) pause(ctx context.Context) bool {
	if c.searchInterval <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(c.searchInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// FramesCaptured returns the number of frames persisted this run.
func (c *Controller) FramesCaptured() int {
	return c.frames
}

// LastKey returns the most recent operator key.
func (c *Controller) LastKey() preview.Key {
	return c.lastKey
}
