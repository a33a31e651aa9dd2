package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Store owns one freshly created version directory and the run's image
// counter. It is not safe for concurrent use; the capture loop is the
// only caller.
type Store struct {
	root       string
	prefix     string
	versionDir string
	index      int
}

// Open resolves the on-disk state and creates the next version
// directory. Resolution order matters: the prior run's image index must
// be read before the new directory exists, otherwise the new empty
// directory would be the latest and the lookup would fail.
//
// Both resolvers failing is a startup-fatal condition: the tool refuses
// to run against a root with no prior version directory. Directory
// creation failing (including a collision with a directory that appeared
// after resolution) is equally fatal.
func Open(root, prefix string) (*Store, error) {
	versionIndex, err := LatestVersionIndex(root, prefix)
	if err != nil {
		return nil, err
	}

	prevDir := filepath.Join(root, prefix+strconv.Itoa(versionIndex))
	imageIndex, err := LatestImageIndex(prevDir)
	if err != nil {
		return nil, err
	}

	versionDir := filepath.Join(root, prefix+strconv.Itoa(versionIndex+1))
	if err := os.Mkdir(versionDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create version directory %s: %w", versionDir, err)
	}

	return &Store{
		root:       root,
		prefix:     prefix,
		versionDir: versionDir,
		index:      imageIndex,
	}, nil
}

// NextImagePath allocates the next image index and returns the path the
// frame must be written to, plus the allocated index. The counter is
// never rolled back: if the caller fails to write the file, the index is
// simply skipped, matching the allocate-then-write behavior the asset
// layout was built around.
func (s *Store) NextImagePath() (string, int) {
	s.index++
	return filepath.Join(s.versionDir, strconv.Itoa(s.index)+imageExt), s.index
}

// VersionDir returns the directory created for this run.
func (s *Store) VersionDir() string {
	return s.versionDir
}

// ImageIndex returns the most recently allocated image index, or the
// prior run's maximum if nothing has been allocated yet.
func (s *Store) ImageIndex() int {
	return s.index
}
