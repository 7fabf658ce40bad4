// Package lint holds the commit message policy: the fixed rule pipeline,
// its severities and the verdict derived from the reported diagnostics.
package lint

import "fmt"

// Severity orders diagnostics from harmless to blocking
type Severity int

const (
	SeverityOK Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns the label printed in front of a diagnostic
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Kind classifies a violation
type Kind string

const (
	// KindNone is used for diagnostics that are not violations
	KindNone Kind = ""
	// KindStructure means the message is too short to have a title and body
	KindStructure Kind = "StructureError"
	// KindFormat covers every title and body formatting violation
	KindFormat Kind = "FormatWarning"
	// KindTrackerCollision means an issue tracker name sits where the type belongs
	KindTrackerCollision Kind = "TrackerCollisionWarning"
)

// Rule identifiers, stable across releases
const (
	RuleMinLines         = "min-lines"
	RuleTitleLength      = "title-length"
	RuleCommitType       = "commit-type"
	RuleTrackerCollision = "tracker-collision"
	RuleTrackerReference = "tracker-reference"
	RuleBlankSeparator   = "blank-separator"
	RuleBodyLength       = "body-length"
	RuleStoryID          = "story-id"
	RuleRequiredPattern  = "required-pattern"
)

// Diagnostic is one reported finding
type Diagnostic struct {
	Rule     string
	Kind     Kind
	Text     string
	Line     int // 1-based line in the cleaned message, 0 when not line specific
	Severity Severity
}

// Verdict is the overall outcome of a validation run
type Verdict string

const (
	VerdictOK      Verdict = "ok"
	VerdictWarning Verdict = "warning"
	VerdictError   Verdict = "error"
)

// Result is the ordered list of diagnostics from one run
type Result struct {
	Diagnostics []Diagnostic
}

// Worst returns the highest severity reported, SeverityOK when empty
func (r Result) Worst() Severity {
	worst := SeverityOK
	for _, d := range r.Diagnostics {
		if d.Severity > worst {
			worst = d.Severity
		}
	}
	return worst
}

// Verdict collapses the worst severity into ok, warning or error
func (r Result) Verdict() Verdict {
	switch r.Worst() {
	case SeverityError:
		return VerdictError
	case SeverityWarning:
		return VerdictWarning
	default:
		return VerdictOK
	}
}

// Violations returns the diagnostics at warning level or above
func (r Result) Violations() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity >= SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Passed reports whether no violation was found
func (r Result) Passed() bool {
	return r.Verdict() == VerdictOK
}
