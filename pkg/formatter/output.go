package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/specscout/pkg/analyzer"
	"github.com/helmcode/specscout/pkg/model"
	"github.com/helmcode/specscout/pkg/validator"
)

const ruleWidth = 50

// DisplayValidation formats and displays a validation result
func DisplayValidation(w io.Writer, result *validator.Result, format string) error {
	switch format {
	case "json":
		return displayJSON(w, result)
	case "yaml":
		return displayYAML(w, result)
	case "human":
		fallthrough
	default:
		displayValidationHuman(w, result)
	}
	return nil
}

// DisplayAnalysis formats and displays the project analysis
func DisplayAnalysis(w io.Writer, analysis *model.AnalysisResult, format string) error {
	switch format {
	case "json":
		return displayJSON(w, analysis)
	case "yaml":
		return displayYAML(w, analysis)
	case "human":
		fallthrough
	default:
		displayAnalysisHuman(w, analysis)
	}
	return nil
}

// DisplayGenerated lists the files written by a render pass
func DisplayGenerated(w io.Writer, files *model.GeneratedFiles) {
	green := color.New(color.FgGreen)
	green.Fprintln(w, "   ✅ Generated baseline spec files:")
	for _, path := range []string{files.ProjectMD, files.ArchitectureMD} {
		fmt.Fprintf(w, "      - %s\n", path)
	}
	fmt.Fprintf(w, "      - %s/\n", files.FeaturesDir)
	if files.Metadata != "" {
		fmt.Fprintf(w, "      - %s\n", files.Metadata)
	}
	if files.Report != "" {
		fmt.Fprintf(w, "      - %s\n", files.Report)
	}
}

func displayJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayValidationHuman(w io.Writer, result *validator.Result) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	cyan.Fprintf(w, "Validating: %s\n", result.Label)
	fmt.Fprintf(w, "File: %s\n", result.Path)
	fmt.Fprintln(w, rule)

	if result.Passed() {
		green.Fprintln(w, "\n✓ Specification is complete!")
		fmt.Fprintln(w)
		return
	}

	yellow.Fprintf(w, "\n⚠ Found %d issue(s):\n\n", len(result.Issues))
	for i, issue := range result.Issues {
		fmt.Fprintf(w, "  %d. %s\n", i+1, issue)
	}
	fmt.Fprintln(w)
}

func displayAnalysisHuman(w io.Writer, a *model.AnalysisResult) {
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)
	white.Fprintln(w, "📦 PROJECT SUMMARY:")

	types := "Unknown"
	if len(a.ProjectTypes) > 0 {
		types = strings.Join(a.ProjectTypes, ", ")
	}
	fmt.Fprintf(w, "   Types:        %s\n", types)

	for _, b := range a.Structure.Buckets() {
		if len(b.Dirs) == 0 {
			continue
		}
		fmt.Fprintf(w, "   %-13s %s\n", b.Name+":", strings.Join(b.Dirs, ", "))
	}

	fmt.Fprintf(w, "   Route files:  %d\n", len(a.APIEndpoints))
	fmt.Fprintf(w, "   Schemas:      %d\n", len(a.DatabaseSchemas))

	if len(a.Dependencies) > 0 {
		fmt.Fprintf(w, "   Manifests:    %s\n", strings.Join(analyzer.ManifestOrder(a.Dependencies), ", "))
	}

	fmt.Fprintf(w, "   Docs:         %d\n", len(a.ExistingDocs))
}
