package analyzer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/helmcode/specscout/pkg/model"
)

var routeKeywords = []string{"route", "endpoint"}

// ScanForRouteHints records every source file that mentions a route or an
// endpoint anywhere in its text. Files are grouped by extension in option
// order and listed lexically within each group. Unreadable files are skipped.
func (a *Analyzer) ScanForRouteHints(root string) []model.RouteHint {
	byExt := make(map[string][]string, len(a.opts.RouteExtensions))
	for _, ext := range a.opts.RouteExtensions {
		byExt[ext] = nil
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			a.log.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && a.excluded(rel, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if _, ok := byExt[ext]; !ok {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			a.log.Debug("skipping unreadable file", "path", rel, "error", readErr)
			return nil
		}
		if mentionsRoute(decodeText(data)) {
			byExt[ext] = append(byExt[ext], rel)
		}
		return nil
	})

	hints := []model.RouteHint{}
	for _, ext := range a.opts.RouteExtensions {
		for _, rel := range byExt[ext] {
			hints = append(hints, model.RouteHint{File: rel, Type: model.RouteTypeAPI})
		}
		// guard against duplicate extensions in the options
		byExt[ext] = nil
	}
	return hints
}

func mentionsRoute(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range routeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// excluded matches exclude entries against the directory name, or against
// the relative path when the entry contains a slash.
func (a *Analyzer) excluded(rel, name string) bool {
	for _, pattern := range a.opts.ExcludeDirs {
		target := name
		if strings.Contains(pattern, "/") {
			target = rel
		}
		if ok, _ := doublestar.Match(pattern, target); ok {
			return true
		}
	}
	return false
}
