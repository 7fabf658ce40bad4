// Package report handles diagnostic formatting and output display
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/blairham/go-commit-msg/pkg/config"
	"github.com/blairham/go-commit-msg/pkg/lint"
)

// severityColors maps each severity to the attributes of its label
var severityColors = map[lint.Severity][]color.Attribute{
	lint.SeverityOK:      {color.FgHiGreen},
	lint.SeverityInfo:    {color.FgHiBlue},
	lint.SeverityWarning: {color.FgHiYellow},
	lint.SeverityError:   {color.FgHiRed},
}

// detailAttrs is used for the verbose rule/line details (dim light gray)
var detailAttrs = []color.Attribute{color.Faint, color.FgWhite}

// Render builds the console line for one diagnostic:
// "<SEVERITY>: [Policy] <text>". With useColor the label is bold and
// the whole line takes the severity color.
func Render(severity lint.Severity, text string, useColor bool) string {
	label := severity.String() + ":"
	body := " [Policy] " + text
	if !useColor {
		return label + body
	}

	attrs := severityColors[severity]
	labelColor := color.New(append([]color.Attribute{color.Bold}, attrs...)...)
	bodyColor := color.New(attrs...)
	labelColor.EnableColor()
	bodyColor.EnableColor()
	return labelColor.Sprint(label) + bodyColor.Sprint(body)
}

// Formatter prints validation results
type Formatter struct {
	colorMode string
	verbose   bool
}

// NewFormatter creates a new result formatter
func NewFormatter(colorMode string, verbose bool) *Formatter {
	return &Formatter{
		colorMode: colorMode,
		verbose:   verbose,
	}
}

// PrintResult writes every diagnostic of result to w, in order
func (f *Formatter) PrintResult(w io.Writer, result lint.Result) {
	useColor := f.shouldEnableColor()
	for _, d := range result.Diagnostics {
		fmt.Fprintln(w, Render(d.Severity, d.Text, useColor))
		if f.verbose {
			f.printDetails(w, d, useColor)
		}
	}
}

// PrintNote writes a single free-standing diagnostic line
func (f *Formatter) PrintNote(w io.Writer, severity lint.Severity, text string) {
	fmt.Fprintln(w, Render(severity, text, f.shouldEnableColor()))
}

// printDetails prints rule metadata under a diagnostic
func (f *Formatter) printDetails(w io.Writer, d lint.Diagnostic, useColor bool) {
	details := []string{fmt.Sprintf("- rule: %s", d.Rule)}
	if d.Kind != lint.KindNone {
		details = append(details, fmt.Sprintf("- kind: %s", d.Kind))
	}
	if d.Line > 0 {
		details = append(details, fmt.Sprintf("- line: %d", d.Line))
	}

	detailColor := color.New(detailAttrs...)
	if useColor {
		detailColor.EnableColor()
	} else {
		detailColor.DisableColor()
	}
	for _, detail := range details {
		fmt.Fprintln(w, detailColor.Sprint(detail))
	}
}

// shouldEnableColor determines if color output should be used based on the color mode setting
func (f *Formatter) shouldEnableColor() bool {
	switch f.colorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// fatih/color detects whether stdout is a terminal
		return !color.NoColor
	}
}

// ExitCode maps a verdict to the hook's process exit status. Warnings only
// fail the hook when warningsBlock is set.
func ExitCode(verdict lint.Verdict, warningsBlock bool) int {
	switch verdict {
	case lint.VerdictOK:
		return 0
	case lint.VerdictWarning:
		if warningsBlock {
			return 1
		}
		return 0
	default:
		return 1
	}
}
