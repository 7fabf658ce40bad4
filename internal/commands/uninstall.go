package commands

import (
	"github.com/mitchellh/cli"
)

// UninstallCommand handles the uninstall command functionality
type UninstallCommand struct {
	GitRepositoryCommand
}

// UninstallOptions holds command-line options for the uninstall command
type UninstallOptions struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

// NewUninstallCommand creates an uninstall command writing to the default output
func NewUninstallCommand() *UninstallCommand {
	return &UninstallCommand{GitRepositoryCommand{BaseCommand{
		Name:        "uninstall",
		Description: "Uninstall the commit-msg hook from the git repository.",
		Examples: []Example{
			{Command: "commit-msg uninstall", Description: "Remove the commit-msg hook"},
		},
		Notes: []string{
			"Only a hook written by 'commit-msg install' is removed.",
			"It does not affect your .commit-msg.yaml file.",
		},
	}}}
}

// Help returns the help text for the uninstall command
func (c *UninstallCommand) Help() string {
	var opts UninstallOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the uninstall command
func (c *UninstallCommand) Synopsis() string {
	return "Uninstall the commit-msg hook from git repository"
}

// Run executes the uninstall command
func (c *UninstallCommand) Run(args []string) int {
	var opts UninstallOptions
	if _, code := c.ParseArgsWithHelp(&opts, args); code != -1 {
		return code
	}

	repo, err := c.RequireGitRepository()
	if err != nil {
		c.Printf("Error: %v\n", err)
		return 1
	}

	if !repo.HasHook(hookTypeCommitMsg) {
		c.Println("commit-msg hook is not installed")
		return 0
	}

	if !repo.IsManagedHook(hookTypeCommitMsg, HookMarker) {
		c.Printf("Error: %s hook was not installed by commit-msg, leaving it in place\n", hookTypeCommitMsg)
		return 1
	}

	if err := repo.UninstallHook(hookTypeCommitMsg); err != nil {
		c.Printf("Error: failed to uninstall %s hook: %v\n", hookTypeCommitMsg, err)
		return 1
	}

	c.Println("commit-msg uninstalled")
	return 0
}

// UninstallCommandFactory creates a new uninstall command instance
func UninstallCommandFactory() (cli.Command, error) {
	return NewUninstallCommand(), nil
}
