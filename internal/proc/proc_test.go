package proc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindPIDNotFound(t *testing.T) {
	_, err := FindPID("snapvault-no-such-process-7f3a")
	if !errors.Is(err, ErrProcessNotFound) {
		t.Errorf("Expected ErrProcessNotFound, got %v", err)
	}
}

func TestFindPIDSelf(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("Cannot resolve own executable: %v", err)
	}

	pid, err := FindPID(filepath.Base(exe))
	if err != nil {
		t.Fatalf("Failed to find own process: %v", err)
	}
	if pid <= 0 {
		t.Errorf("Expected a positive pid, got %d", pid)
	}
}
