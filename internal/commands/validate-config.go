package commands

import (
	"github.com/mitchellh/cli"

	"github.com/blairham/go-commit-msg/pkg/config"
)

// ValidateConfigCommand handles the validate-config command functionality
type ValidateConfigCommand struct {
	BaseCommand
}

// ValidateConfigOptions holds command-line options for the validate-config command
type ValidateConfigOptions struct {
	Config string `short:"c" long:"config" description:"Path to config file" default:".commit-msg.yaml"`
	Help   bool   `short:"h" long:"help"   description:"Show this help message"`
}

// NewValidateConfigCommand creates a validate-config command writing to the default output
func NewValidateConfigCommand() *ValidateConfigCommand {
	return &ValidateConfigCommand{BaseCommand{
		Name:        "validate-config",
		Description: "Validate the .commit-msg.yaml configuration file.",
		Examples: []Example{
			{Command: "commit-msg validate-config", Description: "Validate the configuration file"},
			CommonExamples.Config,
		},
		Notes: []string{
			"Checks the syntax and values of your configuration file.",
			"Returns exit code 0 if valid, non-zero if there are errors.",
		},
	}}
}

// Help returns the help text for the validate-config command
func (c *ValidateConfigCommand) Help() string {
	var opts ValidateConfigOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the validate-config command
func (c *ValidateConfigCommand) Synopsis() string {
	return "Validate configuration file"
}

// Run executes the validate-config command
func (c *ValidateConfigCommand) Run(args []string) int {
	var opts ValidateConfigOptions
	if _, code := c.ParseArgsWithHelp(&opts, args); code != -1 {
		return code
	}

	cfg, err := config.LoadConfig(opts.Config)
	if err != nil {
		c.Printf("Error: failed to load configuration: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		c.Printf("Error: configuration is invalid: %v\n", err)
		return 1
	}

	c.Println("Configuration is valid")
	return 0
}

// ValidateConfigCommandFactory creates a new validate-config command instance
func ValidateConfigCommandFactory() (cli.Command, error) {
	return NewValidateConfigCommand(), nil
}
