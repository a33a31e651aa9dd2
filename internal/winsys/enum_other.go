//go:build !windows

package winsys

type unsupportedEnumerator struct{}

// NewEnumerator returns an enumerator that reports ErrUnsupported. The
// capture loop treats enumeration failure as fatal, so on platforms
// without a native backend the tool exits at the first tick instead of
// spinning.
func NewEnumerator() Enumerator {
	return unsupportedEnumerator{}
}

func (unsupportedEnumerator) Windows() ([]Window, error) {
	return nil, ErrUnsupported
}
