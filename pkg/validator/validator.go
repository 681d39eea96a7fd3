// Package validator checks specification documents for the sections and
// phrases expected of their type. The type is inferred from the file path.
package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrUnknownType  = errors.New("unknown specification type")
)

// DocType identifies a checklist variant.
type DocType string

const (
	TypeSpecKit       DocType = "spec-kit"
	TypeProposal      DocType = "openspec-proposal"
	TypeTasks         DocType = "openspec-tasks"
	TypeDesign        DocType = "openspec-design"
	TypeSpecification DocType = "openspec-specification"
)

// SupportedTypesHelp lists the path conventions Classify understands.
const SupportedTypesHelp = `Supported types:
  - specs/XXX-feature/spec.md (spec-kit)
  - openspec/changes/feature/proposal.md
  - openspec/changes/feature/tasks.md
  - openspec/changes/feature/design.md
  - openspec/specs/... (OpenSpec specification)`

// Result is the outcome of validating one file.
type Result struct {
	Type   DocType  `json:"type" yaml:"type"`
	Label  string   `json:"label" yaml:"label"`
	Path   string   `json:"path" yaml:"path"`
	Issues []string `json:"issues" yaml:"issues"`
}

func (r *Result) Passed() bool {
	return len(r.Issues) == 0
}

// ExitCode is 0 for a clean document and 1 otherwise.
func (r *Result) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Classify picks the document type from the path. Rules are tried in order
// and the first match wins.
func Classify(path string) (DocType, error) {
	p := filepath.ToSlash(path)
	name := filepath.Base(path)

	switch {
	case strings.Contains(p, "specs/") && name == "spec.md":
		return TypeSpecKit, nil
	case strings.Contains(p, "openspec/changes"):
		switch name {
		case "proposal.md":
			return TypeProposal, nil
		case "tasks.md":
			return TypeTasks, nil
		case "design.md":
			return TypeDesign, nil
		}
	case strings.Contains(p, "openspec/specs"):
		return TypeSpecification, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownType, path)
}

// Validate reads path, classifies it and runs the matching checklist.
func Validate(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	docType, err := Classify(path)
	if err != nil {
		return nil, err
	}

	return ValidateContent(path, docType, string(data))
}

// ValidateContent runs the checklist for docType against content.
func ValidateContent(path string, docType DocType, content string) (*Result, error) {
	checklist, ok := ChecklistFor(docType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, docType)
	}

	return &Result{
		Type:   docType,
		Label:  checklist.Label,
		Path:   path,
		Issues: checklist.Run(content),
	}, nil
}
