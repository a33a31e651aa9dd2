//go:build !windows

package capture

import "fmt"

func newWindowCapturer() (Capturer, error) {
	return nil, fmt.Errorf("capture method %q is only available on windows", MethodWindow)
}
