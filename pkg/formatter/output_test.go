package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/specscout/pkg/model"
	"github.com/helmcode/specscout/pkg/validator"
)

func init() {
	color.NoColor = true
}

func failingResult() *validator.Result {
	return &validator.Result{
		Type:   validator.TypeProposal,
		Label:  "OpenSpec proposal",
		Path:   "openspec/changes/x/proposal.md",
		Issues: []string{"Missing: Proposed solution", "Missing: Impact analysis"},
	}
}

func TestDisplayValidation_Human(t *testing.T) {
	t.Run("issues are numbered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayValidation(&buf, failingResult(), "human"))

		out := buf.String()
		assert.Contains(t, out, "Validating: OpenSpec proposal\n")
		assert.Contains(t, out, "File: openspec/changes/x/proposal.md\n")
		assert.Contains(t, out, "⚠ Found 2 issue(s):")
		assert.Contains(t, out, "  1. Missing: Proposed solution\n")
		assert.Contains(t, out, "  2. Missing: Impact analysis\n")
	})

	t.Run("clean document", func(t *testing.T) {
		r := failingResult()
		r.Issues = []string{}

		var buf bytes.Buffer
		require.NoError(t, DisplayValidation(&buf, r, ""))
		assert.Contains(t, buf.String(), "✓ Specification is complete!")
		assert.NotContains(t, buf.String(), "issue(s)")
	})
}

func TestDisplayValidation_Machine(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayValidation(&buf, failingResult(), "json"))

		var got validator.Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *failingResult(), got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayValidation(&buf, failingResult(), "yaml"))

		var got validator.Result
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *failingResult(), got)
	})
}

func TestDisplayAnalysis(t *testing.T) {
	a := model.NewAnalysisResult()
	a.ProjectTypes = []string{"go"}
	a.Structure.SourceDirs = []string{"internal", "pkg"}
	a.Dependencies["go.mod"] = "Found at go.mod"

	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayAnalysis(&buf, a, "human"))

		out := buf.String()
		assert.Contains(t, out, "Types:        go")
		assert.Contains(t, out, "source_dirs:  internal, pkg")
		assert.Contains(t, out, "Manifests:    go.mod")
		assert.NotContains(t, out, "test_dirs")
	})

	t.Run("json uses context keys", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayAnalysis(&buf, a, "json"))
		assert.Contains(t, buf.String(), `"project_types": [`)
		assert.Contains(t, buf.String(), `"source_dirs": [`)
	})
}

func TestDisplayGenerated(t *testing.T) {
	var buf bytes.Buffer
	DisplayGenerated(&buf, &model.GeneratedFiles{
		ProjectMD:      "specs/project.md",
		ArchitectureMD: "specs/architecture.md",
		FeaturesDir:    "specs/features",
		Metadata:       "specs/.analysis-metadata.json",
	})

	out := buf.String()
	assert.Contains(t, out, "- specs/features/\n")
	assert.Contains(t, out, "- specs/.analysis-metadata.json\n")
}
