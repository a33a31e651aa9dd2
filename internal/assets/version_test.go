package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", name, err)
		}
	}
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
}

func TestLatestVersionIndex(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "ver1", "ver7", "ver3")

	n, err := LatestVersionIndex(root, "ver")
	if err != nil {
		t.Fatalf("Failed to resolve version index: %v", err)
	}
	if n != 7 {
		t.Errorf("Expected version index 7, got %d", n)
	}
}

func TestLatestVersionIndexIgnoresNonMatching(t *testing.T) {
	root := t.TempDir()
	// Directories that carry the prefix but not a pure digit suffix, a
	// matching name that is a file, and unrelated entries.
	mkdirs(t, root, "ver2", "version9", "ver", "verbose", "other")
	touch(t, root, "ver99")

	n, err := LatestVersionIndex(root, "ver")
	if err != nil {
		t.Fatalf("Failed to resolve version index: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected version index 2, got %d", n)
	}
}

func TestLatestVersionIndexEmptyRoot(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "unrelated")

	_, err := LatestVersionIndex(root, "ver")
	if !errors.Is(err, ErrNoVersions) {
		t.Errorf("Expected ErrNoVersions, got %v", err)
	}
}

func TestLatestVersionIndexMissingRoot(t *testing.T) {
	_, err := LatestVersionIndex(filepath.Join(t.TempDir(), "missing"), "ver")
	if err == nil {
		t.Error("Expected error for missing root")
	}
	if errors.Is(err, ErrNoVersions) {
		t.Error("Unreadable root should not be reported as ErrNoVersions")
	}
}

func TestLatestVersionDir(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "ver1", "ver12")

	dir, err := LatestVersionDir(root, "ver")
	if err != nil {
		t.Fatalf("Failed to resolve version directory: %v", err)
	}
	if dir != filepath.Join(root, "ver12") {
		t.Errorf("Expected ver12 directory, got %s", dir)
	}
}

func TestLatestImageIndex(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2.png", "9.png", "1.jpg", "foo.png", "10")
	mkdirs(t, dir, "4.png") // directory with an image-shaped name

	m, err := LatestImageIndex(dir)
	if err != nil {
		t.Fatalf("Failed to resolve image index: %v", err)
	}
	if m != 9 {
		t.Errorf("Expected image index 9, got %d", m)
	}
}

func TestLatestImageIndexNoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "cover.png", "1.jpeg")

	_, err := LatestImageIndex(dir)
	if !errors.Is(err, ErrNoImages) {
		t.Errorf("Expected ErrNoImages, got %v", err)
	}
}

func TestParseVersionName(t *testing.T) {
	cases := []struct {
		name string
		want int
		ok   bool
	}{
		{"ver0", 0, true},
		{"ver42", 42, true},
		{"ver007", 7, true},
		{"ver", 0, false},
		{"ver-1", 0, false},
		{"ver1x", 0, false},
		{"v1", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseVersionName(tc.name, "ver")
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseVersionName(%q) = (%d, %v), expected (%d, %v)",
				tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
