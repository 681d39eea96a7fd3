package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/helmcode/specscout/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// the report already lists the issues
		if !errors.Is(err, cmd.ErrIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specscout",
		Short: "Project analysis and spec validation for spec-driven development",
		Long: `specscout scans a code base to bootstrap OpenSpec documentation and
checks spec-kit and OpenSpec documents for missing sections.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cmd.Setup,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(),
		cmd.NewBaselineCmd(),
		cmd.NewValidateCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("specscout version %s\n", version)
		},
	}
}
