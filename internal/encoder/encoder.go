// Package encoder persists captured frames as PNG files.
package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to path. The file either lands complete or is
// removed: a partial write must never be left looking like a valid
// asset.
func WritePNG(img image.Image, path string) error {
	if img == nil {
		return errors.New("cannot encode nil image")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
