// Package assets manages the on-disk layout of captured frames:
// version-numbered directories under an asset root, each holding
// sequentially numbered PNG files. The image counter is global across
// versions; a new run continues where the previous run stopped.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var (
	// ErrNoVersions indicates the asset root holds no version directories.
	ErrNoVersions = errors.New("no version directories found")
	// ErrNoImages indicates a version directory holds no numbered images.
	ErrNoImages = errors.New("no image files found")
)

// LatestVersionIndex scans the direct children of root and returns the
// highest N for which a directory named prefix+N exists. Names must be
// the prefix followed by decimal digits and nothing else.
func LatestVersionIndex(root, prefix string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("failed to read asset root: %w", err)
	}

	best := -1
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, ok := parseVersionName(entry.Name(), prefix)
		if !ok {
			continue
		}
		if n > best {
			best = n
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%s: %w", root, ErrNoVersions)
	}
	return best, nil
}

// LatestVersionDir returns the path of the highest-numbered version
// directory under root.
func LatestVersionDir(root, prefix string) (string, error) {
	n, err := LatestVersionIndex(root, prefix)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, prefix+strconv.Itoa(n)), nil
}

// parseVersionName extracts the integer suffix from a directory name of
// the form prefix+digits. Returns false for anything else.
func parseVersionName(name, prefix string) (int, bool) {
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return 0, false
	}
	suffix := name[len(prefix):]
	if !allDigits(suffix) {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
