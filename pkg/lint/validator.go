package lint

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/blairham/go-commit-msg/pkg/message"
)

// Mode selects how many violations a run reports
type Mode string

const (
	// ModeFirst stops at the first failing check
	ModeFirst Mode = "first"
	// ModeAll runs every applicable check and reports all violations
	ModeAll Mode = "all"
)

// excerptWidth bounds the quoted line in body-length diagnostics
const excerptWidth = 40

// Options tunes a validation run. The zero value stops at the first violation.
type Options struct {
	Mode Mode
}

// state carries what earlier checks learned about the title
type state struct {
	lines      []string
	title      string
	commitType string
	typed      bool
}

// check is one step of the pipeline. It returns no diagnostics on success.
type check func(*state) []Diagnostic

// pipeline lists the checks after the minimum structure check, in order
var pipeline = []check{
	checkTitleLength,
	checkCommitType,
	checkTrackerReference,
	checkBlankSeparator,
	checkBodyLength,
	checkStoryID,
}

// Validate runs the policy against a parsed message
func Validate(msg *message.Message, opts Options) Result {
	return ValidateLines(msg.Lines(), opts)
}

// ValidateLines runs the policy against already cleaned lines
func ValidateLines(lines []string, opts Options) Result {
	var result Result

	if len(lines) < MinLines {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Rule:     RuleMinLines,
			Kind:     KindStructure,
			Severity: SeverityError,
			Text:     fmt.Sprintf("There should be at least %d lines in your commit message.", MinLines),
		})
		return result
	}

	st := &state{lines: lines, title: lines[0]}
	for _, run := range pipeline {
		found := run(st)
		if len(found) == 0 {
			continue
		}
		if opts.Mode != ModeAll {
			result.Diagnostics = append(result.Diagnostics, found[0])
			return result
		}
		result.Diagnostics = append(result.Diagnostics, found...)
	}

	if len(result.Diagnostics) == 0 {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Rule:     RuleRequiredPattern,
			Kind:     KindNone,
			Severity: SeverityOK,
			Text:     "The commit message has the required pattern.",
		})
	}
	return result
}

func checkTitleLength(st *state) []Diagnostic {
	if n := utf8.RuneCountInString(st.title); n > MaxTitleLength {
		return []Diagnostic{formatWarning(RuleTitleLength, 1,
			fmt.Sprintf("There should be at most %d characters in the commit title (found %d).", MaxTitleLength, n))}
	}
	return nil
}

func checkCommitType(st *state) []Diagnostic {
	if commitType, ok := commitTypePrefix(st.title); ok {
		st.commitType = commitType
		st.typed = true
		return nil
	}

	typesList := strings.Join(commitTypes, ", ")
	if tracker, ok := trackerNamePrefix(st.title); ok {
		return []Diagnostic{{
			Rule:     RuleTrackerCollision,
			Kind:     KindTrackerCollision,
			Severity: SeverityWarning,
			Line:     1,
			Text: fmt.Sprintf("The commit title starts with the issue tracker %q; it needs a commit type first: %s",
				tracker, typesList),
		}}
	}
	return []Diagnostic{formatWarning(RuleCommitType, 1, "The commit title needs to have a commit type: "+typesList)}
}

func checkTrackerReference(st *state) []Diagnostic {
	if !st.typed {
		return nil
	}
	rest := stripDecoration(strings.TrimPrefix(st.title, st.commitType))
	ref, ok := matchTracker(rest)
	if !ok || isTicketNumber(ref.Ticket) {
		return nil
	}
	return []Diagnostic{formatWarning(RuleTrackerReference, 1,
		fmt.Sprintf("The issue tracker reference %q must be followed by a ticket number.", ref.Token))}
}

func checkBlankSeparator(st *state) []Diagnostic {
	if st.lines[1] != "" {
		return []Diagnostic{formatWarning(RuleBlankSeparator, 2,
			"There should be an empty line between the commit title and body.")}
	}
	return nil
}

func checkBodyLength(st *state) []Diagnostic {
	var found []Diagnostic
	for i, line := range st.lines[2:] {
		n := utf8.RuneCountInString(line)
		if n <= MaxBodyLineLength {
			continue
		}
		found = append(found, formatWarning(RuleBodyLength, i+3,
			fmt.Sprintf("The commit body should wrap at %d characters (line %d has %d: %q).",
				MaxBodyLineLength, i+3, n, runewidth.Truncate(line, excerptWidth, "..."))))
	}
	return found
}

func checkStoryID(st *state) []Diagnostic {
	for _, line := range st.lines[2:] {
		if strings.Contains(line, StoryIDMarker) {
			return nil
		}
	}
	return []Diagnostic{formatWarning(RuleStoryID, 0, "Please add a Story ID in the commit message.")}
}

func formatWarning(rule string, line int, text string) Diagnostic {
	return Diagnostic{
		Rule:     rule,
		Kind:     KindFormat,
		Severity: SeverityWarning,
		Line:     line,
		Text:     text,
	}
}
