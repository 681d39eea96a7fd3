package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/helmcode/specscout/pkg/formatter"
	"github.com/helmcode/specscout/pkg/logger"
	"github.com/helmcode/specscout/pkg/validator"
	"github.com/helmcode/specscout/pkg/watch"
)

var (
	validateOutputFormat string
	validateWatch        bool
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a specification document for missing sections",
		Long: `Validate a spec-kit or OpenSpec document. The checklist is chosen from
the file path.

` + validator.SupportedTypesHelp + `

Examples:
  # Validate a change proposal
  specscout validate openspec/changes/add-auth/proposal.md

  # Re-validate on every save
  specscout validate specs/001-login/spec.md --watch

  # Machine readable report
  specscout validate openspec/changes/add-auth/tasks.md -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().StringVarP(&validateOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "Re-validate whenever the file changes")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	passed, err := validateAndReport(out, path)
	if err != nil {
		if errors.Is(err, validator.ErrUnknownType) {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n\n", validator.SupportedTypesHelp)
		}
		return err
	}

	if validateWatch {
		log := logger.ForComponent("validate")
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)...\n", path)
		err := watch.File(ctx, path, watch.DefaultDebounce, func() {
			ok, err := validateAndReport(out, path)
			if err != nil {
				log.Warn("re-validation failed", "path", path, "error", err)
				return
			}
			passed = ok
		})
		if err != nil {
			return err
		}
	}

	if !passed {
		return ErrIssuesFound
	}
	return nil
}

func validateAndReport(w io.Writer, path string) (bool, error) {
	result, err := validator.Validate(path)
	if err != nil {
		return false, err
	}
	if err := formatter.DisplayValidation(w, result, validateOutputFormat); err != nil {
		return false, err
	}
	return result.Passed(), nil
}
