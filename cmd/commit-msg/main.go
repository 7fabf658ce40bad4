// Package main provides the commit-msg command-line tool.
// It validates commit messages against a fixed policy and installs itself
// as a git commit-msg hook.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/blairham/go-commit-msg/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
	builtBy = "unknown" //nolint:unused // Set by GoReleaser
)

// commandFactories lists every subcommand
var commandFactories = map[string]cli.CommandFactory{
	"check":           commands.CheckCommandFactory,
	"install":         commands.InstallCommandFactory,
	"uninstall":       commands.UninstallCommandFactory,
	"policy":          commands.PolicyCommandFactory,
	"sample-config":   commands.SampleConfigCommandFactory,
	"validate-config": commands.ValidateConfigCommandFactory,
	"help":            commands.HelpCommandFactory,
}

func main() {
	c := cli.NewCLI(commands.BinaryName, version)
	c.Args = routeArgs(os.Args[1:])
	c.HelpFunc = customHelpFunc
	c.Commands = commandFactories

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

// routeArgs sends anything that is not a subcommand or a global flag to
// check, so "commit-msg .git/COMMIT_EDITMSG" works as a hook
func routeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	switch args[0] {
	case "-h", "--help", "-v", "--version":
		return args
	}
	if _, ok := commandFactories[args[0]]; ok {
		return args
	}
	return append([]string{"check"}, args...)
}

// customHelpFunc lists the commands in alphabetical order
func customHelpFunc(cmdFactories map[string]cli.CommandFactory) string {
	var commandNames []string
	for name := range cmdFactories {
		if name != "help" {
			commandNames = append(commandNames, name)
		}
	}
	sort.Strings(commandNames)

	usageLine := "usage: commit-msg [-h] [--version]\n"
	usageLine += "                  {"
	usageLine += strings.Join(commandNames, ",")
	usageLine += "}\n                  ...\n"

	helpText := usageLine + `
Validate commit messages against the commit message policy.

positional arguments:
  {` + strings.Join(commandNames, ",") + `}
    check               Validate a commit message
    install             Install the commit-msg hook into git repository
    policy              Show the commit message policy
    sample-config       Produce a sample .commit-msg.yaml file
    uninstall           Uninstall the commit-msg hook from git repository
    validate-config     Validate .commit-msg.yaml files

A message file given without a command is checked:
  commit-msg .git/COMMIT_EDITMSG

optional arguments:
  -h, --help            show this help message and exit
  --version             show program's version number and exit
`

	return helpText
}
