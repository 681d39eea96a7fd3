package model

// AnalysisResult is the project context written by the analyzer.
type AnalysisResult struct {
	AnalysisDate    string            `json:"analysis_date,omitempty" yaml:"analysis_date,omitempty"`
	ProjectTypes    []string          `json:"project_types" yaml:"project_types"`
	Structure       Structure         `json:"structure" yaml:"structure"`
	APIEndpoints    []RouteHint       `json:"api_endpoints" yaml:"api_endpoints"`
	DatabaseSchemas []string          `json:"database_schemas" yaml:"database_schemas"`
	Dependencies    map[string]string `json:"dependencies" yaml:"dependencies"`
	ExistingDocs    []DocFile         `json:"existing_docs" yaml:"existing_docs"`
}

// Structure holds the conventional directories found directly under the root.
type Structure struct {
	SourceDirs []string `json:"source_dirs" yaml:"source_dirs"`
	TestDirs   []string `json:"test_dirs" yaml:"test_dirs"`
	ConfigDirs []string `json:"config_dirs" yaml:"config_dirs"`
	DocDirs    []string `json:"doc_dirs" yaml:"doc_dirs"`
}

// Bucket is one named category of Structure.
type Bucket struct {
	Name string
	Dirs []string
}

// Buckets returns the categories in their fixed order.
func (s Structure) Buckets() []Bucket {
	return []Bucket{
		{Name: "source_dirs", Dirs: s.SourceDirs},
		{Name: "test_dirs", Dirs: s.TestDirs},
		{Name: "config_dirs", Dirs: s.ConfigDirs},
		{Name: "doc_dirs", Dirs: s.DocDirs},
	}
}

// RouteTypeAPI is the only route hint type the scanner emits.
const RouteTypeAPI = "api_route"

type RouteHint struct {
	File string `json:"file" yaml:"file"`
	Type string `json:"type" yaml:"type"`
}

type DocFile struct {
	File   string `json:"file" yaml:"file"`
	Size   int64  `json:"size" yaml:"size"`
	Exists bool   `json:"exists" yaml:"exists"`
}

// GenerationMetadata is written next to generated scaffold documents.
type GenerationMetadata struct {
	GeneratedAt     string          `json:"generated_at" yaml:"generated_at"`
	AnalysisID      string          `json:"analysis_id" yaml:"analysis_id"`
	AnalysisSummary AnalysisSummary `json:"analysis_summary" yaml:"analysis_summary"`
}

type AnalysisSummary struct {
	ProjectTypes         []string `json:"project_types" yaml:"project_types"`
	APIEndpointsCount    int      `json:"api_endpoints_count" yaml:"api_endpoints_count"`
	DatabaseSchemasCount int      `json:"database_schemas_count" yaml:"database_schemas_count"`
	DocumentationCount   int      `json:"documentation_count" yaml:"documentation_count"`
}

// GeneratedFiles lists what a render pass wrote. Empty fields were not written.
type GeneratedFiles struct {
	ProjectMD      string `json:"project_md" yaml:"project_md"`
	ArchitectureMD string `json:"architecture_md" yaml:"architecture_md"`
	FeaturesDir    string `json:"features_dir" yaml:"features_dir"`
	Metadata       string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Report         string `json:"report,omitempty" yaml:"report,omitempty"`
}

// NewAnalysisResult returns a result whose collections marshal as empty, not null.
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		ProjectTypes: []string{},
		Structure: Structure{
			SourceDirs: []string{},
			TestDirs:   []string{},
			ConfigDirs: []string{},
			DocDirs:    []string{},
		},
		APIEndpoints:    []RouteHint{},
		DatabaseSchemas: []string{},
		Dependencies:    map[string]string{},
		ExistingDocs:    []DocFile{},
	}
}
