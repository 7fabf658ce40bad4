package commands

import (
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
)

// HelpFormatter provides standardized help formatting for all commands
type HelpFormatter struct {
	Command     string
	Description string
	Examples    []Example
	Notes       []string
}

// Example represents a command example
type Example struct {
	Command     string
	Description string
}

// FormatHelp generates standardized help text for a command
func (h *HelpFormatter) FormatHelp(parser *flags.Parser) string {
	var result strings.Builder

	// Command description
	if h.Description != "" {
		fmt.Fprintf(&result, "%s\n\n", h.Description)
	}

	// Examples section
	if len(h.Examples) > 0 {
		result.WriteString("Examples:\n")
		for _, example := range h.Examples {
			if example.Description != "" {
				fmt.Fprintf(&result, "  %s  # %s\n", example.Command, example.Description)
			} else {
				fmt.Fprintf(&result, "  %s\n", example.Command)
			}
		}
		result.WriteString("\n")
	}

	// Notes section
	if len(h.Notes) > 0 {
		result.WriteString("Notes:\n")
		for _, note := range h.Notes {
			if note == "" {
				result.WriteString("\n")
				continue
			}
			fmt.Fprintf(&result, "  • %s\n", note)
		}
		result.WriteString("\n")
	}

	// Auto-generated options help
	var helpBuf strings.Builder
	parser.WriteHelp(&helpBuf)
	result.WriteString(helpBuf.String())

	return result.String()
}

// CommonExamples provides examples shared by several commands
var CommonExamples = struct {
	Verbose Example
	Config  Example
}{
	Verbose: Example{Command: "--verbose", Description: "Show rule ids and line numbers"},
	Config:  Example{Command: "--config .commit-msg.toml", Description: "Use a different config file"},
}
