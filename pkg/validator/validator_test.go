package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, root, rel, content string) string {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	return full
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path    string
		want    DocType
		wantErr bool
	}{
		{"specs/001-login/spec.md", TypeSpecKit, false},
		{"/repo/specs/002-x/spec.md", TypeSpecKit, false},
		{"openspec/changes/add-auth/proposal.md", TypeProposal, false},
		{"openspec/changes/add-auth/tasks.md", TypeTasks, false},
		{"openspec/changes/add-auth/design.md", TypeDesign, false},
		{"openspec/specs/auth/requirements.md", TypeSpecification, false},
		// spec-kit rule comes first
		{"openspec/specs/auth/spec.md", TypeSpecKit, false},
		// changes directory with an unexpected name does not fall through
		{"openspec/changes/add-auth/notes.md", "", true},
		{"docs/readme.md", "", true},
		{"spec.md", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Classify(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const completeSpecKit = `# Feature: Login

## Overview
Users sign in with email.

## User Stories
As a returning user, I want to sign in so that I see my dashboard.

## Requirements
- Passwords are hashed. Security review required.
- Example: POST /login with valid credentials returns 200.

## Acceptance Criteria
- Invalid credentials return an error message.
`

func TestValidateContent_SpecKitComplete(t *testing.T) {
	result, err := ValidateContent("specs/001/spec.md", TypeSpecKit, completeSpecKit)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.True(t, result.Passed())
	assert.Equal(t, 0, result.ExitCode())
	assert.Equal(t, "spec-kit specification", result.Label)
}

func TestValidateContent_EmptyDocuments(t *testing.T) {
	tests := []struct {
		docType DocType
		want    []string
	}{
		{TypeSpecKit, []string{
			"Missing: Overview section",
			"Missing: User Stories section",
			"Missing: Requirements section",
			"Missing: Acceptance Criteria section",
			"No examples found. Add concrete usage examples.",
			"No edge cases or error handling documented.",
			"User stories may be incomplete. Use format: 'As a [user], I want...'",
			"Consider adding non-functional requirements (performance, security, etc.)",
		}},
		{TypeProposal, []string{
			"Missing: Problem statement",
			"Missing: Proposed solution",
			"Missing: Impact analysis",
			"Missing rationale. Explain why this change is needed.",
			"Consider documenting alternatives considered.",
			"Document what files/components are affected.",
		}},
		{TypeSpecification, []string{
			"Missing: Problem statement",
			"Missing: Proposed solution",
			"Missing: Impact analysis",
			"Missing rationale. Explain why this change is needed.",
			"Consider documenting alternatives considered.",
			"Document what files/components are affected.",
		}},
		{TypeTasks, []string{
			"No task checkboxes found. Use '- [ ] Task description' format.",
			"Consider documenting task dependencies.",
		}},
		{TypeDesign, []string{
			"Consider adding technical details (API, database, schema changes).",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			result, err := ValidateContent("x.md", tt.docType, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Issues)

			checklist, ok := ChecklistFor(tt.docType)
			require.True(t, ok)
			assert.Len(t, result.Issues, len(checklist.Rules))
			assert.Equal(t, 1, result.ExitCode())
		})
	}
}

func TestValidateContent_Proposal(t *testing.T) {
	t.Run("problem only", func(t *testing.T) {
		result, err := ValidateContent("proposal.md", TypeProposal, "Problem: X")
		require.NoError(t, err)
		assert.Contains(t, result.Issues, "Missing: Proposed solution")
		assert.Contains(t, result.Issues, "Missing: Impact analysis")
		assert.Equal(t, 1, result.ExitCode())
	})

	t.Run("complete", func(t *testing.T) {
		content := "## Problem\nLogin is slow because of N+1 queries.\n\n" +
			"## Solution\nBatch the queries.\n\n" +
			"## Alternatives\nCaching.\n\n" +
			"## Impact\nThe auth service.\n"
		result, err := ValidateContent("proposal.md", TypeProposal, content)
		require.NoError(t, err)
		assert.Empty(t, result.Issues)
	})

	t.Run("case insensitive", func(t *testing.T) {
		content := "# PROBLEM\n# SOLUTION\n# IMPACT\nWHY: ALTERNATIVES"
		result, err := ValidateContent("proposal.md", TypeProposal, content)
		require.NoError(t, err)
		assert.Empty(t, result.Issues)
	})
}

func TestValidateContent_Tasks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one task",
			content: "- [ ] write code\nDepends on design.",
			want:    []string{"Only one task found. Consider breaking down further."},
		},
		{
			name:    "two tasks without dependencies",
			content: "- [ ] write code\n- [x] write tests",
			want:    []string{"Consider documenting task dependencies."},
		},
		{
			name:    "complete",
			content: "- [ ] write code\n- [ ] write tests after code",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateContent("tasks.md", TypeTasks, tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Issues)
		})
	}
}

func TestValidateContent_UnknownType(t *testing.T) {
	_, err := ValidateContent("x.md", DocType("bogus"), "")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestValidate(t *testing.T) {
	root := t.TempDir()

	t.Run("proposal with only a problem line", func(t *testing.T) {
		path := writeDoc(t, root, "openspec/changes/feat/proposal.md", "Problem: X")

		result, err := Validate(path)
		require.NoError(t, err)
		assert.Equal(t, TypeProposal, result.Type)
		assert.Equal(t, path, result.Path)
		assert.Contains(t, result.Issues, "Missing: Proposed solution")
		assert.Contains(t, result.Issues, "Missing: Impact analysis")
		assert.Equal(t, 1, result.ExitCode())
	})

	t.Run("complete spec-kit file", func(t *testing.T) {
		path := writeDoc(t, root, "specs/001-login/spec.md", completeSpecKit)

		result, err := Validate(path)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Validate(filepath.Join(root, "openspec/changes/none/proposal.md"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("unknown type", func(t *testing.T) {
		path := writeDoc(t, root, "notes/todo.md", "- [ ] a")
		_, err := Validate(path)
		assert.ErrorIs(t, err, ErrUnknownType)
	})
}
