package assets

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const imageExt = ".png"

// LatestImageIndex scans the direct children of versionDir and returns
// the highest M for which a regular file named M.png exists. The whole
// stem must be decimal digits; names like "foo.png" or "1.jpg" are
// ignored.
func LatestImageIndex(versionDir string) (int, error) {
	entries, err := os.ReadDir(versionDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read version directory: %w", err)
	}

	best := -1
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m, ok := parseImageName(entry.Name())
		if !ok {
			continue
		}
		if m > best {
			best = m
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%s: %w", versionDir, ErrNoImages)
	}
	return best, nil
}

// parseImageName extracts the integer stem from a filename of the form
// digits+".png". Returns false for anything else.
func parseImageName(name string) (int, bool) {
	stem, found := strings.CutSuffix(name, imageExt)
	if !found || !allDigits(stem) {
		return 0, false
	}
	m, err := strconv.Atoi(stem)
	if err != nil {
		return 0, false
	}
	return m, true
}
