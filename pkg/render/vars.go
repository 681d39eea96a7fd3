package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/helmcode/specscout/pkg/analyzer"
	"github.com/helmcode/specscout/pkg/model"
	"github.com/helmcode/specscout/pkg/parser"
)

// Vars maps placeholder names (without braces) to rendered text.
type Vars map[string]string

const (
	noDescription      = "No description available"
	maxListedEndpoints = 10
	maxListedSchemas   = 5
	maxBaselineRoutes  = 5

	securityConsiderations = "- [TODO] Add authentication and authorization mechanisms\n" +
		"- [TODO] Add data encryption strategies\n" +
		"- [TODO] Add security audit plans"
)

// frameworkHints is ordered so the tech stack section is stable.
var frameworkHints = []struct{ manifest, label string }{
	{"package.json", "Node.js ecosystem"},
	{"requirements.txt", "Python packages"},
	{"go.mod", "Go modules"},
	{"Cargo.toml", "Rust crates"},
}

// title builds a fresh caser per call; casers are stateful.
func title(s string) string {
	return cases.Title(language.Und).String(s)
}

// BuildTemplateVars renders every analysis bucket into placeholder text.
func BuildTemplateVars(a *model.AnalysisResult, root string, now time.Time) Vars {
	techStack := formatTechStack(a.ProjectTypes, a.Dependencies)
	schemas := formatDatabaseSchemas(a.DatabaseSchemas)

	return Vars{
		"PROJECT_NAME":            ProjectName(root),
		"PROJECT_DESCRIPTION":     readDescription(root),
		"DETECTED_TECHNOLOGIES":   techStack,
		"PROJECT_STRUCTURE":       formatDirectoryTree(a.Structure),
		"API_ENDPOINTS":           formatAPIEndpoints(a.APIEndpoints),
		"DATABASE_SCHEMA":         schemas,
		"ARCHITECTURE_OVERVIEW":   inferArchitecturePattern(a.Structure),
		"SYSTEM_COMPONENTS":       formatSystemComponents(a.Structure),
		"TECH_STACK_DETAILS":      techStack,
		"DATA_STORAGE":            schemas,
		"SECURITY_CONSIDERATIONS": securityConsiderations,

		"DATE":               now.Format("2006-01-02"),
		"DETECTED_TECH_LIST": strings.Join(a.ProjectTypes, ", "),
		"STRUCTURE_SUMMARY":  formatStructureSummary(a.Structure),

		"DEPENDENCY_LIST":   formatDependencyList(a.Dependencies),
		"EXISTING_DOCS":     formatExistingDocs(a.ExistingDocs),
		"TECH_LIST":         formatTechList(a.ProjectTypes),
		"SOURCE_COMPONENTS": formatSourceComponents(a.Structure.SourceDirs),
		"API_SECTION":       formatAPISection(a.APIEndpoints),
		"DATABASE_SECTION":  formatDatabaseSection(a.DatabaseSchemas),
	}
}

// Substitute replaces every {KEY} of vars in text in a single pass, so values
// that happen to contain braces are never expanded again.
func Substitute(text string, vars Vars) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// ProjectName derives a display name from the root directory name.
func ProjectName(root string) string {
	name := filepath.Base(root)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return title(name)
}

func readDescription(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil || !utf8.Valid(data) {
		return noDescription
	}
	if desc, ok := parser.ExtractDescription(string(data)); ok {
		return desc
	}
	return noDescription
}

func formatTechStack(projectTypes []string, deps map[string]string) string {
	var lines []string
	for _, tech := range projectTypes {
		lines = append(lines, fmt.Sprintf("- **%s**", title(tech)))
	}
	for _, hint := range frameworkHints {
		if _, ok := deps[hint.manifest]; ok {
			lines = append(lines, fmt.Sprintf("  - %s: `%s`", hint.label, hint.manifest))
		}
	}

	if len(lines) == 0 {
		return "- [To be detected] Please add tech stack information"
	}
	return strings.Join(lines, "\n")
}

func categoryTitle(bucket string) string {
	return title(strings.ReplaceAll(bucket, "_", " "))
}

func formatDirectoryTree(s model.Structure) string {
	var lines []string
	for _, b := range s.Buckets() {
		if len(b.Dirs) == 0 {
			continue
		}
		lines = append(lines, categoryTitle(b.Name)+":")
		for _, d := range b.Dirs {
			lines = append(lines, "  "+d+"/")
		}
	}

	if len(lines) == 0 {
		return "[To be scanned] Project directory structure"
	}
	return strings.Join(lines, "\n")
}

func formatStructureSummary(s model.Structure) string {
	var lines []string
	for _, b := range s.Buckets() {
		if len(b.Dirs) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("**%s**: %s", categoryTitle(b.Name), strings.Join(b.Dirs, ", ")))
	}
	return strings.Join(lines, "\n")
}

func formatAPIEndpoints(endpoints []model.RouteHint) string {
	if len(endpoints) == 0 {
		return "[Not detected] Please add API endpoint information"
	}

	lines := []string{"**Detected route files**:"}
	for i, e := range endpoints {
		if i == maxListedEndpoints {
			break
		}
		lines = append(lines, fmt.Sprintf("- `%s`", e.File))
	}
	if len(endpoints) > maxListedEndpoints {
		lines = append(lines, fmt.Sprintf("- ... and %d more files", len(endpoints)-maxListedEndpoints))
	}
	return strings.Join(lines, "\n")
}

func formatDatabaseSchemas(schemas []string) string {
	if len(schemas) == 0 {
		return "[Not detected] Please add database design information"
	}

	lines := []string{"**Detected Schema files**:"}
	for i, s := range schemas {
		if i == maxListedSchemas {
			break
		}
		lines = append(lines, fmt.Sprintf("- `%s`", s))
	}
	if len(schemas) > maxListedSchemas {
		lines = append(lines, fmt.Sprintf("- ... and %d more files", len(schemas)-maxListedSchemas))
	}
	return strings.Join(lines, "\n")
}

func inferArchitecturePattern(s model.Structure) string {
	anyDir := func(subs ...string) bool {
		for _, d := range s.SourceDirs {
			lower := strings.ToLower(d)
			for _, sub := range subs {
				if strings.Contains(lower, sub) {
					return true
				}
			}
		}
		return false
	}

	var patterns []string
	if anyDir("model") {
		patterns = append(patterns, "Likely uses MVC or layered architecture")
	}
	if anyDir("controller") {
		patterns = append(patterns, "Detected Controller layer")
	}
	if anyDir("service") {
		patterns = append(patterns, "Detected Service layer")
	}
	if anyDir("repository", "dao") {
		patterns = append(patterns, "Detected Repository/DAO layer")
	}

	if len(patterns) == 0 {
		return "- [To be analyzed] Please add architecture patterns based on code structure"
	}
	for i, p := range patterns {
		patterns[i] = "- " + p
	}
	return strings.Join(patterns, "\n")
}

func formatSystemComponents(s model.Structure) string {
	if len(s.SourceDirs) == 0 {
		return "[To be identified] Please add system component descriptions"
	}

	lines := make([]string, 0, len(s.SourceDirs))
	for _, d := range s.SourceDirs {
		lines = append(lines, fmt.Sprintf("- **`%s/`**: [TODO] Add component responsibility description", d))
	}
	return strings.Join(lines, "\n")
}

func formatDependencyList(deps map[string]string) string {
	manifests := analyzer.ManifestOrder(deps)
	lines := make([]string, 0, len(manifests))
	for _, m := range manifests {
		lines = append(lines, fmt.Sprintf("- `%s`: %s", m, deps[m]))
	}
	return strings.Join(lines, "\n")
}

func formatExistingDocs(docs []model.DocFile) string {
	if len(docs) == 0 {
		return "No existing documentation found."
	}

	lines := make([]string, 0, len(docs))
	for _, d := range docs {
		lines = append(lines, fmt.Sprintf("- `%s` (%d bytes)", d.File, d.Size))
	}
	return strings.Join(lines, "\n")
}

func formatTechList(projectTypes []string) string {
	lines := make([]string, 0, len(projectTypes))
	for _, t := range projectTypes {
		lines = append(lines, "- "+title(t))
	}
	return strings.Join(lines, "\n")
}

func formatSourceComponents(dirs []string) string {
	lines := make([]string, 0, len(dirs))
	for _, d := range dirs {
		lines = append(lines, fmt.Sprintf("- `%s/`: [TODO: Describe component purpose]", d))
	}
	return strings.Join(lines, "\n")
}

// formatAPISection is empty when nothing was found; otherwise it opens with a
// blank line so it sits under the components list.
func formatAPISection(endpoints []model.RouteHint) string {
	if len(endpoints) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n### API Endpoints\n\nFound %d potential API route files:\n\n", len(endpoints))
	for i, e := range endpoints {
		if i == maxBaselineRoutes {
			break
		}
		fmt.Fprintf(&b, "- `%s`\n", e.File)
	}
	if len(endpoints) > maxBaselineRoutes {
		fmt.Fprintf(&b, "- ... and %d more\n", len(endpoints)-maxBaselineRoutes)
	}
	b.WriteString("\n**TODO**: Document actual endpoints, methods, and parameters\n")
	return b.String()
}

func formatDatabaseSection(schemas []string) string {
	if len(schemas) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n### Database\n\nSchema files found:\n\n")
	for _, s := range schemas {
		fmt.Fprintf(&b, "- `%s`\n", s)
	}
	b.WriteString("\n**TODO**: Document data model and relationships\n")
	return b.String()
}
