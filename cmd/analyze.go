package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/helmcode/specscout/pkg/analyzer"
	"github.com/helmcode/specscout/pkg/config"
	"github.com/helmcode/specscout/pkg/formatter"
	"github.com/helmcode/specscout/pkg/render"
)

var (
	analyzeOutputFile    string
	analyzeProjectRoot   string
	analyzeGenerateSpecs bool
	analyzeTemplatesDir  string
	analyzeOutputFormat  string
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an OpenSpec project and save its context",
		Long: `Scan a project initialized with OpenSpec and write a JSON summary of its
ecosystems, layout, route files, schemas, manifests and documentation.

Examples:
  # Analyze the current directory
  specscout analyze

  # Analyze another project and render baseline specs
  specscout analyze --project-root ../shop --generate-specs

  # Use custom templates for the generated specs
  specscout analyze --generate-specs --templates-dir templates/

  # Print the context as YAML
  specscout analyze -o yaml`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&analyzeOutputFile, "output-file", defaults.ContextFile, "Output file for the project context")
	cmd.Flags().StringVar(&analyzeProjectRoot, "project-root", ".", "Project root directory")
	cmd.Flags().BoolVar(&analyzeGenerateSpecs, "generate-specs", false, "Generate baseline OpenSpec specifications from the analysis")
	cmd.Flags().StringVar(&analyzeTemplatesDir, "templates-dir", defaults.TemplatesDir, "Directory with project.md.template and architecture.md.template (relative to the project root unless given here)")
	cmd.Flags().StringVarP(&analyzeOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	progress := out
	if analyzeOutputFormat == "json" || analyzeOutputFormat == "yaml" {
		progress = cmd.ErrOrStderr()
	}

	root, err := analyzer.CheckRoot(analyzeProjectRoot)
	if err != nil {
		return err
	}
	if err := analyzer.CheckInitialized(root); err != nil {
		if errors.Is(err, analyzer.ErrNotInitialized) {
			printNotInitialized(progress)
		}
		return err
	}

	outputFile := stringSetting(cmd, "output-file", analyzeOutputFile, settings.ContextFile)
	templatesDir := settings.TemplatesDir
	if cmd.Flags().Changed("templates-dir") {
		// given on the command line, so relative to the working directory
		if templatesDir, err = filepath.Abs(analyzeTemplatesDir); err != nil {
			return fmt.Errorf("resolve templates dir: %w", err)
		}
	}

	printHeader(progress, "Analyzing Project Context")

	a := analyzer.NewWithReporter(analyzer.OptionsFromConfig(settings), newStepReporter(progress))
	result, err := a.Analyze(root)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := render.WriteJSON(outputFile, result); err != nil {
		return fmt.Errorf("failed to save project context: %w", err)
	}

	if err := formatter.DisplayAnalysis(out, result, analyzeOutputFormat); err != nil {
		return err
	}

	fmt.Fprintln(progress)
	printSuccess(progress, "Project context saved to: "+outputFile)

	if !analyzeGenerateSpecs {
		printContextNextSteps(progress, outputFile)
		return nil
	}

	fmt.Fprintln(progress, "\n7. Generating baseline specification files...")
	files, err := render.NewRenderer(templatesDir).RenderScaffold(result, specsDir(root), root)
	if err != nil {
		return fmt.Errorf("failed to generate specs: %w", err)
	}
	formatter.DisplayGenerated(progress, files)
	printScaffoldNextSteps(progress, settings.SpecsDir)

	return nil
}

// specsDir places a relative specs_dir under the project root.
func specsDir(root string) string {
	if filepath.IsAbs(settings.SpecsDir) {
		return settings.SpecsDir
	}
	return filepath.Join(root, settings.SpecsDir)
}

func printNotInitialized(w io.Writer) {
	printWarning(w, "Project not yet initialized with OpenSpec")
	fmt.Fprintln(w, "\nPlease run the initialization command first:")
	fmt.Fprintln(w, "  npm install -g @fission-ai/openspec@latest && openspec init")
	fmt.Fprintln(w)
}

func printContextNextSteps(w io.Writer, outputFile string) {
	printBanner(w, "Next steps: generate baseline specs or refine them with your assistant")
	fmt.Fprintln(w, "\n💡 Tip: add --generate-specs to write baseline spec files automatically")
	fmt.Fprintln(w, "\n1️⃣  Have your assistant read the analysis results:")
	fmt.Fprintf(w, "   \"Please read %s and help me\n", outputFile)
	fmt.Fprintln(w, "    create OpenSpec documentation for this project\"")
	fmt.Fprintln(w, "\n2️⃣  Create a feature proposal:")
	fmt.Fprintln(w, "   \"I want to add [YOUR FEATURE]. Please create an")
	fmt.Fprintln(w, "    OpenSpec change proposal for this feature\"")
	fmt.Fprintln(w)
}

func printScaffoldNextSteps(w io.Writer, specsDir string) {
	printBanner(w, "✨ Baseline specification generation complete")
	fmt.Fprintln(w, "\n📝 Generated spec files contain basic information from code analysis")
	fmt.Fprintln(w, "🔧 Please refine the sections marked with [TODO]")
	fmt.Fprintln(w, "\nRecommended next steps:")
	fmt.Fprintln(w, "\n1️⃣  Refine the specs:")
	fmt.Fprintf(w, "   \"Please read %s and help me\n", filepath.ToSlash(filepath.Join(specsDir, render.ProjectFile)))
	fmt.Fprintln(w, "    complete all [TODO] sections with proper details\"")
	fmt.Fprintln(w, "\n2️⃣  Document core features:")
	fmt.Fprintf(w, "   \"Help me identify and document the core features in %s/\"\n", filepath.ToSlash(filepath.Join(specsDir, render.FeaturesDir)))
	fmt.Fprintln(w, "\n3️⃣  Create a first change proposal:")
	fmt.Fprintln(w, "   \"I want to add [FEATURE]. Please create an OpenSpec change proposal\"")
	fmt.Fprintln(w)
}
