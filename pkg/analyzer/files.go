package analyzer

import (
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/helmcode/specscout/pkg/model"
)

// topLevelDocs are checked at the project root, in this order.
var topLevelDocs = []string{"README.md", "ARCHITECTURE.md", "API.md", "CONTRIBUTING.md"}

const docsDir = "docs"

// ScanForSchemaFiles matches the schema patterns against the tree. Output
// keeps pattern order and is sorted within a pattern, so repeated scans of an
// unchanged tree return the same list.
func (a *Analyzer) ScanForSchemaFiles(root string) []string {
	fsys := os.DirFS(root)

	schemas := []string{}
	for _, pattern := range a.opts.SchemaPatterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			a.log.Debug("bad schema pattern", "pattern", pattern, "error", err)
			continue
		}
		sort.Strings(matches)
		schemas = append(schemas, matches...)
	}
	return schemas
}

// ScanForExistingDocs lists well-known top-level docs plus every Markdown
// file under docs/.
func (a *Analyzer) ScanForExistingDocs(root string) []model.DocFile {
	docs := []model.DocFile{}

	for _, name := range topLevelDocs {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil || info.IsDir() {
			continue
		}
		docs = append(docs, model.DocFile{File: name, Size: info.Size(), Exists: true})
	}

	docsRoot := filepath.Join(root, docsDir)
	if !dirExists(docsRoot) {
		return docs
	}

	matches, err := doublestar.Glob(os.DirFS(docsRoot), "**/*.md", doublestar.WithFilesOnly())
	if err != nil {
		a.log.Debug("docs glob failed", "error", err)
		return docs
	}
	sort.Strings(matches)

	for _, m := range matches {
		info, err := os.Stat(filepath.Join(docsRoot, filepath.FromSlash(m)))
		if err != nil {
			continue
		}
		docs = append(docs, model.DocFile{File: path.Join(docsDir, m), Size: info.Size(), Exists: true})
	}
	return docs
}
