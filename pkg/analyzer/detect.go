package analyzer

import (
	"path/filepath"
	"sort"

	"github.com/helmcode/specscout/pkg/model"
)

type ecosystem struct {
	tag       string
	markers   []string
	manifests []string
}

// ecosystems is ordered; detection output follows this order.
var ecosystems = []ecosystem{
	{
		tag:       "python",
		markers:   []string{"setup.py", "requirements.txt", "pyproject.toml"},
		manifests: []string{"requirements.txt", "Pipfile", "pyproject.toml"},
	},
	{
		tag:       "node",
		markers:   []string{"package.json", "yarn.lock"},
		manifests: []string{"package.json"},
	},
	{
		tag:       "go",
		markers:   []string{"go.mod", "go.sum"},
		manifests: []string{"go.mod"},
	},
	{
		tag:       "rust",
		markers:   []string{"Cargo.toml"},
		manifests: []string{"Cargo.toml"},
	},
	{
		tag:       "java",
		markers:   []string{"pom.xml", "build.gradle"},
		manifests: []string{"pom.xml", "build.gradle"},
	},
	{
		tag:     "ruby",
		markers: []string{"Gemfile"},
	},
}

var structurePatterns = struct {
	source, test, config, doc []string
}{
	source: []string{"src", "app", "lib", "pkg", "internal"},
	test:   []string{"test", "tests", "__tests__", "spec"},
	config: []string{"config", "conf", "settings"},
	doc:    []string{"docs", "doc", "documentation"},
}

// DetectProjectTypes returns the ecosystem tags whose marker files exist at root.
func DetectProjectTypes(root string) []string {
	detected := []string{}
	for _, eco := range ecosystems {
		for _, marker := range eco.markers {
			if fileExists(filepath.Join(root, marker)) {
				detected = append(detected, eco.tag)
				break
			}
		}
	}
	return detected
}

// ScanDirectoryStructure records conventional directories directly under root.
func ScanDirectoryStructure(root string) model.Structure {
	return model.Structure{
		SourceDirs: existingDirs(root, structurePatterns.source),
		TestDirs:   existingDirs(root, structurePatterns.test),
		ConfigDirs: existingDirs(root, structurePatterns.config),
		DocDirs:    existingDirs(root, structurePatterns.doc),
	}
}

func existingDirs(root string, names []string) []string {
	found := []string{}
	for _, name := range names {
		if dirExists(filepath.Join(root, name)) {
			found = append(found, name)
		}
	}
	return found
}

// ScanForDependencyManifests maps each manifest present for the detected
// ecosystems to a location string.
func ScanForDependencyManifests(root string, projectTypes []string) map[string]string {
	deps := map[string]string{}
	for _, tag := range projectTypes {
		for _, eco := range ecosystems {
			if eco.tag != tag {
				continue
			}
			for _, manifest := range eco.manifests {
				if fileExists(filepath.Join(root, manifest)) {
					deps[manifest] = "Found at " + manifest
				}
			}
		}
	}
	return deps
}

// ManifestOrder returns the keys of deps in detection order: ecosystem order,
// then manifest order within an ecosystem. Unknown keys follow, sorted.
func ManifestOrder(deps map[string]string) []string {
	ordered := make([]string, 0, len(deps))
	seen := make(map[string]bool, len(deps))
	for _, eco := range ecosystems {
		for _, manifest := range eco.manifests {
			if _, ok := deps[manifest]; ok && !seen[manifest] {
				ordered = append(ordered, manifest)
				seen[manifest] = true
			}
		}
	}

	var rest []string
	for k := range deps {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
