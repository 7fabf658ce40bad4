package commands

import (
	"slices"

	"github.com/mitchellh/cli"
)

// HelpCommand handles the help command functionality
type HelpCommand struct {
	BaseCommand
}

// HelpOptions holds command-line options for the help command
type HelpOptions struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

// commandHelp holds the one-line description of each command
var commandHelp = map[string]string{
	"check":           "Validate a commit message file, the commit in progress, or an existing commit.",
	"install":         "Install the commit-msg hook. Run this once per repository to set up the hook.",
	"uninstall":       "Remove the commit-msg hook from the repository.",
	"policy":          "Print the commit types, issue trackers, and limits messages are checked against.",
	"sample-config":   "Generate an example .commit-msg.yaml file.",
	"validate-config": "Check that your .commit-msg.yaml file is valid.",
	"help":            "Show help information for commands.",
}

// NewHelpCommand creates a help command writing to the default output
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{BaseCommand{Name: "help", Usage: "[COMMAND]"}}
}

// Help returns the help text for the help command
func (c *HelpCommand) Help() string {
	helpText := `
Show help for a specific command.

Usage: commit-msg help [COMMAND]

If COMMAND is specified, shows detailed help for that command.
If no command is specified, shows general help.

Available commands:
  check               Validate a commit message
  install             Install the commit-msg hook into git repository
  policy              Show the commit message policy
  sample-config       Produce a sample .commit-msg.yaml file
  uninstall           Uninstall the commit-msg hook from git repository
  validate-config     Validate .commit-msg.yaml files

`
	return helpText
}

// Synopsis returns a short description of the help command
func (c *HelpCommand) Synopsis() string {
	return "Show help for a specific command"
}

// Run executes the help command
func (c *HelpCommand) Run(args []string) int {
	var opts HelpOptions
	remaining, code := c.ParseArgsWithHelp(&opts, args)
	if code != -1 {
		return code
	}

	if len(remaining) == 0 {
		c.Printf("%s", c.Help())
		return 0
	}

	command := remaining[0]

	help, exists := commandHelp[command]
	if !exists {
		c.Printf("Unknown command: %s\n\n", command)
		c.Println("Available commands:")
		names := make([]string, 0, len(commandHelp))
		for name := range commandHelp {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			c.Printf("  %s\n", name)
		}
		return 1
	}

	c.Printf("Command: %s\n\n", command)
	c.Printf("Description: %s\n\n", help)
	c.Printf("For detailed usage information, run:\n")
	c.Printf("  %s %s --help\n", BinaryName, command)
	return 0
}

// HelpCommandFactory creates a new help command instance
func HelpCommandFactory() (cli.Command, error) {
	return NewHelpCommand(), nil
}
