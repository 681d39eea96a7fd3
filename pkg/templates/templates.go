package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ProjectTemplateName      = "project.md.template"
	ArchitectureTemplateName = "architecture.md.template"

	// DefaultDir is where templates are looked up, relative to the project root.
	DefaultDir = "openspec/templates"
)

// Load returns the named template from dir, or fallback when dir is empty or
// the file does not exist. fromFile tells which one was used.
func Load(dir, name, fallback string) (text string, fromFile bool, err error) {
	if dir == "" {
		return fallback, false, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, false, nil
		}
		return "", false, fmt.Errorf("read template %s: %w", name, err)
	}
	return string(data), true, nil
}
