package commands

import (
	"fmt"

	"github.com/mitchellh/cli"
)

// InstallCommand handles the install command functionality
type InstallCommand struct {
	GitRepositoryCommand
}

// InstallOptions holds command-line options for the install command
type InstallOptions struct {
	Overwrite bool `short:"f" long:"overwrite" description:"Overwrite an existing commit-msg hook not written by this tool"`
	Help      bool `short:"h" long:"help"      description:"Show this help message"`
}

// NewInstallCommand creates an install command writing to the default output
func NewInstallCommand() *InstallCommand {
	return &InstallCommand{GitRepositoryCommand{BaseCommand{
		Name:        "install",
		Description: "Install the commit-msg hook into the git repository.",
		Examples: []Example{
			{Command: "commit-msg install", Description: "Install the commit-msg hook"},
			{Command: "commit-msg install --overwrite", Description: "Replace an existing hook"},
		},
		Notes: []string{
			"The hook runs 'commit-msg check' on the message git is about to commit.",
			"core.hooksPath is honored when set.",
		},
	}}}
}

// Help returns the help text for the install command
func (c *InstallCommand) Help() string {
	var opts InstallOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the install command
func (c *InstallCommand) Synopsis() string {
	return "Install the commit-msg hook into git repository"
}

// Run executes the install command
func (c *InstallCommand) Run(args []string) int {
	var opts InstallOptions
	if _, code := c.ParseArgsWithHelp(&opts, args); code != -1 {
		return code
	}

	repo, err := c.RequireGitRepository()
	if err != nil {
		c.Printf("Error: %v\n", err)
		return 1
	}

	if repo.HasHook(hookTypeCommitMsg) && !repo.IsManagedHook(hookTypeCommitMsg, HookMarker) && !opts.Overwrite {
		c.Printf("Hook %s already exists (use --overwrite to replace)\n", hookTypeCommitMsg)
		return 1
	}

	if err := repo.InstallHook(hookTypeCommitMsg, generateHookScript()); err != nil {
		c.Printf("Error: failed to install %s hook: %v\n", hookTypeCommitMsg, err)
		return 1
	}

	c.Printf("commit-msg installed at %s/%s\n", repo.HooksDir(), hookTypeCommitMsg)
	return 0
}

// generateHookScript generates the commit-msg hook script
func generateHookScript() string {
	return fmt.Sprintf("#!/bin/sh\n%s\nexec %s check \"$1\"\n", HookMarker, BinaryName)
}

// InstallCommandFactory creates a new install command instance
func InstallCommandFactory() (cli.Command, error) {
	return NewInstallCommand(), nil
}
