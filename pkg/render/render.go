package render

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/helmcode/specscout/pkg/logger"
	"github.com/helmcode/specscout/pkg/model"
	"github.com/helmcode/specscout/pkg/templates"
)

const (
	ProjectFile      = "project.md"
	ArchitectureFile = "architecture.md"
	FeaturesDir      = "features"
	FeaturesReadme   = "README.md"
	MetadataFile     = ".analysis-metadata.json"
	ReportFile       = "analysis-report.json"
)

// Renderer writes scaffold documents. Existing files are overwritten.
type Renderer struct {
	templatesDir string
	now          func() time.Time
	newID        func() string
	log          *slog.Logger
}

// NewRenderer returns a renderer that prefers templates found in
// templatesDir and falls back to the built-in texts. A relative directory is
// resolved against the project root; empty means templates.DefaultDir.
func NewRenderer(templatesDir string) *Renderer {
	return &Renderer{
		templatesDir: templatesDir,
		now:          time.Now,
		newID:        uuid.NewString,
		log:          logger.ForComponent("render"),
	}
}

// RenderScaffold writes project.md, architecture.md, features/README.md and
// the generation metadata into outputDir.
func (r *Renderer) RenderScaffold(a *model.AnalysisResult, outputDir, root string) (*model.GeneratedFiles, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	now := r.now()
	vars := BuildTemplateVars(a, root, now)
	tmplDir := r.templateDir(root)
	files := &model.GeneratedFiles{
		ProjectMD:      filepath.Join(outputDir, ProjectFile),
		ArchitectureMD: filepath.Join(outputDir, ArchitectureFile),
		FeaturesDir:    filepath.Join(outputDir, FeaturesDir),
		Metadata:       filepath.Join(outputDir, MetadataFile),
	}

	if err := r.renderTemplate(tmplDir, templates.ProjectTemplateName, templates.DefaultProject, vars, files.ProjectMD); err != nil {
		return nil, err
	}
	if err := r.renderTemplate(tmplDir, templates.ArchitectureTemplateName, templates.DefaultArchitecture, vars, files.ArchitectureMD); err != nil {
		return nil, err
	}
	if err := writeFeatures(files.FeaturesDir, templates.FeaturesReadme); err != nil {
		return nil, err
	}

	metadata := model.GenerationMetadata{
		GeneratedAt: now.Format("2006-01-02 15:04:05"),
		AnalysisID:  r.newID(),
		AnalysisSummary: model.AnalysisSummary{
			ProjectTypes:         a.ProjectTypes,
			APIEndpointsCount:    len(a.APIEndpoints),
			DatabaseSchemasCount: len(a.DatabaseSchemas),
			DocumentationCount:   len(a.ExistingDocs),
		},
	}
	if err := WriteJSON(files.Metadata, metadata); err != nil {
		return nil, err
	}

	return files, nil
}

// RenderBaseline writes the self-contained baseline documents and the full
// analysis report into outputDir. Templates on disk are not consulted.
func (r *Renderer) RenderBaseline(a *model.AnalysisResult, outputDir, root string) (*model.GeneratedFiles, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	vars := BuildTemplateVars(a, root, r.now())
	files := &model.GeneratedFiles{
		ProjectMD:      filepath.Join(outputDir, ProjectFile),
		ArchitectureMD: filepath.Join(outputDir, ArchitectureFile),
		FeaturesDir:    filepath.Join(outputDir, FeaturesDir),
		Report:         filepath.Join(outputDir, ReportFile),
	}

	if err := writeFile(files.ProjectMD, Substitute(templates.BaselineProject, vars)); err != nil {
		return nil, err
	}
	if err := writeFile(files.ArchitectureMD, Substitute(templates.BaselineArchitecture, vars)); err != nil {
		return nil, err
	}
	if err := writeFeatures(files.FeaturesDir, templates.BaselineFeaturesReadme); err != nil {
		return nil, err
	}
	if err := WriteJSON(files.Report, a); err != nil {
		return nil, err
	}

	return files, nil
}

func (r *Renderer) templateDir(root string) string {
	dir := r.templatesDir
	if dir == "" {
		dir = templates.DefaultDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

func (r *Renderer) renderTemplate(dir, name, fallback string, vars Vars, dest string) error {
	text, fromFile, err := templates.Load(dir, name, fallback)
	if err != nil {
		return err
	}
	r.log.Debug("rendering template", "template", name, "dir", dir, "from_file", fromFile, "dest", dest)
	return writeFile(dest, Substitute(text, vars))
}

func writeFeatures(dir, readme string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create features dir: %w", err)
	}
	return writeFile(filepath.Join(dir, FeaturesReadme), readme)
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteJSON writes v as indented JSON, creating parent directories.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", filepath.Base(path), err)
	}
	return writeFile(path, string(data)+"\n")
}
