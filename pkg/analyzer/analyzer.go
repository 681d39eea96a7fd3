package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/helmcode/specscout/pkg/config"
	"github.com/helmcode/specscout/pkg/logger"
	"github.com/helmcode/specscout/pkg/model"
)

var (
	ErrRootNotFound   = errors.New("project root not found")
	ErrNotInitialized = errors.New("project not initialized with OpenSpec")
)

// OpenSpecDir marks a project initialized by the OpenSpec CLI.
const OpenSpecDir = "openspec"

// Options controls the configurable parts of the scan.
type Options struct {
	RouteExtensions []string
	ExcludeDirs     []string
	SchemaPatterns  []string
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RouteExtensions: cfg.RouteExtensions,
		ExcludeDirs:     cfg.ExcludeDirs,
		SchemaPatterns:  cfg.SchemaPatterns,
	}
}

// Reporter receives progress for each analysis step. Steps are numbered from 1.
type Reporter interface {
	StepStarted(step int, title string)
	StepFinished(step int, summary string)
}

type Analyzer struct {
	opts     Options
	reporter Reporter
	log      *slog.Logger
	now      func() time.Time
}

func New(opts Options) *Analyzer {
	return &Analyzer{
		opts: opts,
		log:  logger.ForComponent("analyzer"),
		now:  time.Now,
	}
}

func NewWithReporter(opts Options, r Reporter) *Analyzer {
	a := New(opts)
	a.reporter = r
	return a
}

// Analyze runs every scan against root and returns the combined result.
func (a *Analyzer) Analyze(root string) (*model.AnalysisResult, error) {
	root, err := CheckRoot(root)
	if err != nil {
		return nil, err
	}

	result := model.NewAnalysisResult()
	result.AnalysisDate = a.now().Format("2006-01-02 15:04:05")

	a.step(1, "Detecting project type...", func() string {
		result.ProjectTypes = DetectProjectTypes(root)
		if len(result.ProjectTypes) == 0 {
			return "Found: Unknown"
		}
		return "Found: " + strings.Join(result.ProjectTypes, ", ")
	})

	a.step(2, "Analyzing directory structure...", func() string {
		result.Structure = ScanDirectoryStructure(root)
		return ""
	})

	a.step(3, "Finding API patterns...", func() string {
		result.APIEndpoints = a.ScanForRouteHints(root)
		return fmt.Sprintf("Found %d potential route files", len(result.APIEndpoints))
	})

	a.step(4, "Locating database schemas...", func() string {
		result.DatabaseSchemas = a.ScanForSchemaFiles(root)
		return fmt.Sprintf("Found %d schema files", len(result.DatabaseSchemas))
	})

	a.step(5, "Extracting dependencies...", func() string {
		result.Dependencies = ScanForDependencyManifests(root, result.ProjectTypes)
		return ""
	})

	a.step(6, "Scanning existing documentation...", func() string {
		result.ExistingDocs = a.ScanForExistingDocs(root)
		return fmt.Sprintf("Found %d documentation files", len(result.ExistingDocs))
	})

	a.log.Debug("analysis complete",
		"root", root,
		"types", len(result.ProjectTypes),
		"routes", len(result.APIEndpoints),
		"schemas", len(result.DatabaseSchemas),
		"docs", len(result.ExistingDocs))

	return result, nil
}

func (a *Analyzer) step(n int, title string, run func() string) {
	if a.reporter != nil {
		a.reporter.StepStarted(n, title)
	}
	summary := run()
	if a.reporter != nil {
		a.reporter.StepFinished(n, summary)
	}
}

// CheckRoot resolves root to an absolute directory path.
func CheckRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, abs)
	}

	return abs, nil
}

// CheckInitialized reports whether the OpenSpec marker directory exists under root.
func CheckInitialized(root string) error {
	if !dirExists(filepath.Join(root, OpenSpecDir)) {
		return ErrNotInitialized
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
