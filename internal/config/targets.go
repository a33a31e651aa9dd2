package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target names one application window to capture.
type Target struct {
	Process string `yaml:"process"`
	Title   string `yaml:"title"`
}

type targetsFile struct {
	Targets map[string]Target `yaml:"targets"`
}

// LoadTargets reads a targets.yaml profile file mapping names to
// {process, title} pairs.
func LoadTargets(path string) (map[string]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var file targetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse targets file: %w", err)
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("targets file %s defines no targets", path)
	}
	return file.Targets, nil
}

// ApplyTarget overlays the named profile onto the settings.
func (s *Settings) ApplyTarget(targets map[string]Target, name string) error {
	target, ok := targets[name]
	if !ok {
		return fmt.Errorf("unknown target %q", name)
	}
	if target.Process == "" || target.Title == "" {
		return fmt.Errorf("target %q must set both process and title", name)
	}
	s.ProcessName = target.Process
	s.WindowTitle = target.Title
	return nil
}
