package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helmcode/specscout/pkg/templates"
)

// DefaultFileName is picked up from the project root when --config is not given.
const DefaultFileName = ".specscout.yaml"

// Config holds the tunables shared by all subcommands.
type Config struct {
	ContextFile     string   `yaml:"context_file"`
	SpecsDir        string   `yaml:"specs_dir"`
	TemplatesDir    string   `yaml:"templates_dir"`
	RouteExtensions []string `yaml:"route_extensions"`
	ExcludeDirs     []string `yaml:"exclude_dirs"`
	SchemaPatterns  []string `yaml:"schema_patterns"`
	LogLevel        string   `yaml:"log_level"`
	LogFormat       string   `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ContextFile:     ".claude/project-context.json",
		SpecsDir:        "openspec/specs",
		TemplatesDir:    templates.DefaultDir,
		RouteExtensions: []string{".py", ".js", ".ts", ".php", ".rb"},
		ExcludeDirs:     []string{"node_modules", ".git"},
		SchemaPatterns: []string{
			"**/migrations/*.sql",
			"**/schema.sql",
			"**/models.py",
			"**/schema.rb",
			"**/schema/*.sql",
		},
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// A missing file is only an error when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(&fileCfg)

	return cfg, nil
}

// ApplyEnv overrides fields from SPECSCOUT_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("SPECSCOUT_CONTEXT_FILE"); v != "" {
		c.ContextFile = v
	}
	if v := getenv("SPECSCOUT_SPECS_DIR"); v != "" {
		c.SpecsDir = v
	}
	if v := getenv("SPECSCOUT_TEMPLATES_DIR"); v != "" {
		c.TemplatesDir = v
	}
	if v := getenv("SPECSCOUT_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv("SPECSCOUT_LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
}

func (c *Config) merge(o *Config) {
	if o.ContextFile != "" {
		c.ContextFile = o.ContextFile
	}
	if o.SpecsDir != "" {
		c.SpecsDir = o.SpecsDir
	}
	if o.TemplatesDir != "" {
		c.TemplatesDir = o.TemplatesDir
	}
	if len(o.RouteExtensions) > 0 {
		c.RouteExtensions = o.RouteExtensions
	}
	if len(o.ExcludeDirs) > 0 {
		c.ExcludeDirs = o.ExcludeDirs
	}
	if len(o.SchemaPatterns) > 0 {
		c.SchemaPatterns = o.SchemaPatterns
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
}
