package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/cli"
	"github.com/muesli/termenv"

	"github.com/blairham/go-commit-msg/pkg/config"
	"github.com/blairham/go-commit-msg/pkg/lint"
)

// PolicyCommand prints the fixed commit message policy
type PolicyCommand struct {
	BaseCommand
}

// PolicyOptions holds command-line options for the policy command
type PolicyOptions struct {
	Color string `long:"color" description:"Whether to use color in output" choice:"auto" choice:"always" choice:"never" default:"auto"`
	Help  bool   `long:"help"  description:"Show this help message"                                                                  short:"h"`
}

// NewPolicyCommand creates a policy command writing to the default output
func NewPolicyCommand() *PolicyCommand {
	return &PolicyCommand{BaseCommand{
		Name:        "policy",
		Description: "Show the rules every commit message is checked against.",
		Examples: []Example{
			{Command: "commit-msg policy", Description: "Print the policy"},
		},
	}}
}

// Help returns the help text for the policy command
func (c *PolicyCommand) Help() string {
	var opts PolicyOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the policy command
func (c *PolicyCommand) Synopsis() string {
	return "Show the commit message policy"
}

// Run executes the policy command
func (c *PolicyCommand) Run(args []string) int {
	var opts PolicyOptions
	if _, code := c.ParseArgsWithHelp(&opts, args); code != -1 {
		return code
	}

	c.Println(renderPolicy(c.newRenderer(opts.Color)))
	return 0
}

// newRenderer picks the lipgloss color profile for the requested mode
func (c *PolicyCommand) newRenderer(colorMode string) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(c.Writer())
	switch colorMode {
	case config.ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer
}

// renderPolicy lays the policy tables out in a bordered panel
func renderPolicy(r *lipgloss.Renderer) string {
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	keyStyle := r.NewStyle().Bold(true).Width(16)
	panelStyle := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	names := lint.TrackerNames()
	aliases := lint.TrackerAliases()
	trackers := make([]string, len(names))
	for i, name := range names {
		trackers[i] = fmt.Sprintf("%s (%s)", name, aliases[i])
	}

	separators := make([]string, 0, len(lint.TrackerSeparators()))
	for _, sep := range lint.TrackerSeparators() {
		separators = append(separators, fmt.Sprintf("%q", sep))
	}

	rows := [][2]string{
		{"Min lines", fmt.Sprintf("%d (title, blank line, body, trailing blank line)", lint.MinLines)},
		{"Title length", fmt.Sprintf("at most %d characters", lint.MaxTitleLength)},
		{"Commit types", strings.Join(lint.CommitTypes(), ", ")},
		{"Issue trackers", strings.Join(trackers, ", ")},
		{"Separators", strings.Join(separators, " ")},
		{"Tracker refs", "<type>: <tracker><separator><number>, e.g. feat: gh#123"},
		{"Body wrap", fmt.Sprintf("%d characters", lint.MaxBodyLineLength)},
		{"Story ID", fmt.Sprintf("a body line containing %q", lint.StoryIDMarker)},
	}

	lines := []string{titleStyle.Render("Commit message policy"), ""}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(row[0]), row[1]))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PolicyCommandFactory creates a new policy command instance
func PolicyCommandFactory() (cli.Command, error) {
	return NewPolicyCommand(), nil
}
