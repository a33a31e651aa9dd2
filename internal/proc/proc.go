// Package proc resolves a running process by its executable name.
package proc

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrProcessNotFound indicates no running process matched the name.
var ErrProcessNotFound = errors.New("process not found")

// FindPID returns the pid of the first running process whose name
// exactly equals name. Matching is exact, not substring: "Safari"
// does not match "Safari Helper". Processes whose name cannot be read
// (permission or lifetime races) are skipped.
func FindPID(name string) (int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		procName, err := p.Name()
		if err != nil {
			continue
		}
		if procName == name {
			return p.Pid, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrProcessNotFound)
}
