package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/helmcode/specscout/pkg/analyzer"
	"github.com/helmcode/specscout/pkg/config"
	"github.com/helmcode/specscout/pkg/formatter"
	"github.com/helmcode/specscout/pkg/render"
)

var (
	baselineOutputDir   string
	baselineProjectRoot string
)

func NewBaselineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Generate baseline specifications for a legacy project",
		Long: `Scan a project that has not adopted OpenSpec yet and write baseline
project and architecture documents plus the full analysis report.

Examples:
  # Write specs into openspec/specs
  specscout baseline

  # Analyze another project and write specs elsewhere
  specscout baseline --project-root ../legacy-app --output-dir docs/specs`,
		Args: cobra.NoArgs,
		RunE: runBaseline,
	}

	cmd.Flags().StringVar(&baselineOutputDir, "output-dir", config.Default().SpecsDir, "Output directory for generated specs")
	cmd.Flags().StringVar(&baselineProjectRoot, "project-root", ".", "Project root directory")

	return cmd
}

func runBaseline(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := analyzer.CheckRoot(baselineProjectRoot)
	if err != nil {
		return err
	}
	outputDir := stringSetting(cmd, "output-dir", baselineOutputDir, settings.SpecsDir)

	printHeader(out, "Analyzing Legacy Project")

	a := analyzer.NewWithReporter(analyzer.OptionsFromConfig(settings), newStepReporter(out))
	result, err := a.Analyze(root)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	// the report carries the analysis only
	result.AnalysisDate = ""

	fmt.Fprintf(out, "\n7. Generating baseline specifications in %s...\n", outputDir)
	files, err := render.NewRenderer("").RenderBaseline(result, outputDir, root)
	if err != nil {
		return fmt.Errorf("failed to generate specs: %w", err)
	}

	printHeader(out, "Analysis Complete")
	formatter.DisplayGenerated(out, files)
	printBaselineNextSteps(out)
	fmt.Fprintln(out)
	printSuccess(out, "Full analysis saved to: "+files.Report)

	return nil
}

func printBaselineNextSteps(w io.Writer) {
	printBanner(w, "NEXT STEPS:")
	fmt.Fprintln(w, "1. Review and refine generated specifications")
	fmt.Fprintln(w, "2. Add business context and requirements")
	fmt.Fprintln(w, "3. Document features in openspec/specs/features/")
	fmt.Fprintln(w, "4. Initialize OpenSpec: openspec init")
	fmt.Fprintln(w, "5. Start using OpenSpec for new changes")
}
