package capture

import (
	"testing"

	"github.com/snapvault/snapvault/internal/winsys"
)

func TestNewRejectsUnknownMethod(t *testing.T) {
	if _, err := New(Method("screenshot")); err == nil {
		t.Error("Expected error for unknown capture method")
	}
}

func TestNewBounds(t *testing.T) {
	c, err := New(MethodBounds)
	if err != nil {
		t.Fatalf("Failed to create bounds capturer: %v", err)
	}
	if c == nil {
		t.Fatal("Expected a capturer, got nil")
	}
}

func TestBoundsCapturerRejectsEmptyRect(t *testing.T) {
	_, err := BoundsCapturer{}.CaptureWindow(winsys.Window{Title: "Target"})
	if err == nil {
		t.Error("Expected error for a window with empty bounds")
	}
}
