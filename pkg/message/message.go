// Package message models a commit message as git hands it to a commit-msg hook.
package message

import (
	"fmt"
	"os"
	"strings"
)

// CommentPrefix marks a line git strips from the final message
const CommentPrefix = "#"

// ScissorsLine is the marker git writes above the diff in verbose commits.
// Everything from this line onward is not part of the message.
const ScissorsLine = "# ------------------------ >8 ------------------------"

// Message holds the raw lines exactly as authored and the cleaned lines
// the policy rules run against
type Message struct {
	raw     []string
	cleaned []string
}

// Parse splits text into lines the way a line-by-line file read does:
// a final terminator does not produce an extra empty line
func Parse(text string) *Message {
	return FromLines(splitLines(text))
}

// FromLines builds a message from lines. Trailing "\n" or "\r\n" on each
// line is removed.
func FromLines(lines []string) *Message {
	raw := make([]string, len(lines))
	for i, line := range lines {
		raw[i] = trimTerminator(line)
	}
	return &Message{
		raw:     raw,
		cleaned: StripComments(raw),
	}
}

// Read loads the commit message stored at path
func Read(path string) (*Message, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the file git passes to the hook
	if err != nil {
		return nil, fmt.Errorf("failed to read commit message %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Raw returns the lines as authored, comments included
func (m *Message) Raw() []string {
	return append([]string(nil), m.raw...)
}

// Lines returns the cleaned lines
func (m *Message) Lines() []string {
	return append([]string(nil), m.cleaned...)
}

// Len is the number of cleaned lines
func (m *Message) Len() int {
	return len(m.cleaned)
}

// Title returns the first cleaned line. ok is false for an empty message.
func (m *Message) Title() (title string, ok bool) {
	if len(m.cleaned) == 0 {
		return "", false
	}
	return m.cleaned[0], true
}

// Body returns the lines after the title and the separator line
func (m *Message) Body() []string {
	if len(m.cleaned) <= 2 {
		return nil
	}
	return append([]string(nil), m.cleaned[2:]...)
}

// IsComment reports whether git treats line as a comment
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommentPrefix)
}

// IsScissors reports whether line is the verbose-commit cut marker
func IsScissors(line string) bool {
	return strings.TrimRight(line, " \t") == ScissorsLine
}

// StripComments drops comment lines and everything below a scissors line.
// Applying it twice gives the same result as applying it once.
func StripComments(lines []string) []string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsScissors(line) {
			break
		}
		if IsComment(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
