package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// stepReporter shows a spinner while an analysis step runs and prints the
// step title and summary once it is done.
type stepReporter struct {
	out   io.Writer
	s     *spinner.Spinner
	title string
}

func newStepReporter(out io.Writer) *stepReporter {
	return &stepReporter{
		out: out,
		s:   spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out)),
	}
}

func (r *stepReporter) StepStarted(step int, title string) {
	r.title = fmt.Sprintf("%d. %s", step, title)
	r.s.Suffix = " " + r.title
	r.s.Start()
}

func (r *stepReporter) StepFinished(step int, summary string) {
	r.s.Stop()
	fmt.Fprintln(r.out, r.title)
	if summary != "" {
		fmt.Fprintf(r.out, "   %s\n", summary)
	}
}

func printHeader(w io.Writer, title string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintf(w, "=== %s ===\n", title)
	fmt.Fprintln(w)
}

func printBanner(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(w, "⚠ %s\n", msg)
}
