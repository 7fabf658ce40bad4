package lint

// Length and structure limits applied to every commit message
const (
	// MinLines covers title, blank separator, one body line and a trailing blank
	MinLines = 4
	// MaxTitleLength is the longest accepted title, in characters
	MaxTitleLength = 50
	// MaxBodyLineLength is the wrap column for body lines, in characters
	MaxBodyLineLength = 72
	// StoryIDMarker must appear somewhere in the body
	StoryIDMarker = "[#"
)

var (
	commitTypes       = []string{"feat", "fix", "refactor", "style", "docs", "test", "chore", "revert"}
	trackerNames      = []string{"jira", "github", "gitlab", "bitbucket", "launchpad", "zendesk"}
	trackerAliases    = []string{"jr", "gh", "gl", "bb", "lp", "zd"}
	trackerSeparators = []string{":", "/", "#", "-", " "}
)

// CommitTypes returns the accepted commit type tags
func CommitTypes() []string {
	return append([]string(nil), commitTypes...)
}

// TrackerNames returns the full names of the known issue trackers
func TrackerNames() []string {
	return append([]string(nil), trackerNames...)
}

// TrackerAliases returns the short tracker names, index-aligned with TrackerNames
func TrackerAliases() []string {
	return append([]string(nil), trackerAliases...)
}

// TrackerSeparators returns the characters allowed between a tracker and a ticket number
func TrackerSeparators() []string {
	return append([]string(nil), trackerSeparators...)
}

// TrackerTokens returns every tracker name and alias joined with every
// separator: full names first, then aliases
func TrackerTokens() []string {
	tokens := make([]string, 0, (len(trackerNames)+len(trackerAliases))*len(trackerSeparators))
	for _, group := range [][]string{trackerNames, trackerAliases} {
		for _, tool := range group {
			for _, sep := range trackerSeparators {
				tokens = append(tokens, tool+sep)
			}
		}
	}
	return tokens
}
