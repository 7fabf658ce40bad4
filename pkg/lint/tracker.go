package lint

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	trackerPattern    = regexp2.MustCompile(buildTrackerPattern(), regexp2.None)
	ticketPattern     = regexp2.MustCompile(`^[0-9]+$`, regexp2.None)
	decorationPattern = regexp2.MustCompile(`^(?:\([^)]*\))?!?:?\s*`, regexp2.None)
)

// trackerReference is a tracker token found at the start of a title remainder
type trackerReference struct {
	Tool   string
	Token  string
	Ticket string
}

// buildTrackerPattern turns the token table into one anchored expression
// with named groups for the tool, the separator and what follows
func buildTrackerPattern() string {
	tools := make([]string, 0, len(trackerNames)+len(trackerAliases))
	for _, tool := range append(TrackerNames(), trackerAliases...) {
		tools = append(tools, regexp2.Escape(tool))
	}
	seps := make([]string, 0, len(trackerSeparators))
	for _, sep := range trackerSeparators {
		seps = append(seps, regexp2.Escape(sep))
	}
	return `^(?<token>(?<tool>` + strings.Join(tools, "|") + `)(?:` + strings.Join(seps, "|") + `))(?<ticket>.*)$`
}

// matchTracker reports the tracker token text starts with, if any
func matchTracker(text string) (trackerReference, bool) {
	m, err := trackerPattern.FindStringMatch(text)
	if err != nil || m == nil {
		return trackerReference{}, false
	}
	return trackerReference{
		Tool:   m.GroupByName("tool").String(),
		Token:  m.GroupByName("token").String(),
		Ticket: m.GroupByName("ticket").String(),
	}, true
}

// isTicketNumber reports whether ref is one or more ASCII digits
func isTicketNumber(ref string) bool {
	ok, err := ticketPattern.MatchString(ref)
	return err == nil && ok
}

// stripDecoration removes "(scope)", "!" and ":" that conventionally follow
// a commit type, plus the whitespace after them
func stripDecoration(rest string) string {
	m, err := decorationPattern.FindStringMatch(rest)
	if err != nil || m == nil {
		return rest
	}
	return strings.TrimPrefix(rest, m.String())
}

// trackerNamePrefix returns the full tracker name title starts with
func trackerNamePrefix(title string) (string, bool) {
	for _, name := range trackerNames {
		if strings.HasPrefix(title, name) {
			return name, true
		}
	}
	return "", false
}

// commitTypePrefix returns the commit type title starts with
func commitTypePrefix(title string) (string, bool) {
	for _, commitType := range commitTypes {
		if strings.HasPrefix(title, commitType) {
			return commitType, true
		}
	}
	return "", false
}
