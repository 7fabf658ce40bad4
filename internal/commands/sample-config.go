package commands

import (
	"os"

	"github.com/mitchellh/cli"

	"github.com/blairham/go-commit-msg/pkg/config"
)

// sampleConfigHeader documents the accepted values above the generated YAML
const sampleConfigHeader = `# commit-msg configuration
#   color:    auto | always | never
#   warnings: blocking (any warning fails the hook) | advisory
#   report:   first (stop at the first violation) | all
`

// SampleConfigCommand handles the sample-config command functionality
type SampleConfigCommand struct {
	BaseCommand
}

// SampleConfigOptions holds command-line options for the sample-config command
type SampleConfigOptions struct {
	Force bool `short:"f" long:"force" description:"Overwrite existing configuration file"`
	Help  bool `short:"h" long:"help"  description:"Show this help message"`
}

// NewSampleConfigCommand creates a sample-config command writing to the default output
func NewSampleConfigCommand() *SampleConfigCommand {
	return &SampleConfigCommand{BaseCommand{
		Name:        "sample-config",
		Description: "Generate a sample .commit-msg.yaml file.",
		Examples: []Example{
			{Command: "commit-msg sample-config", Description: "Generate sample config"},
			{Command: "commit-msg sample-config --force", Description: "Overwrite existing config"},
		},
		Notes: []string{
			"The file only controls reporting; the commit message rules are fixed.",
			"Use --force to overwrite an existing configuration file.",
		},
	}}
}

// Help returns the help text for the sample-config command
func (c *SampleConfigCommand) Help() string {
	var opts SampleConfigOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the sample-config command
func (c *SampleConfigCommand) Synopsis() string {
	return "Generate a sample configuration file"
}

// Run executes the sample-config command
func (c *SampleConfigCommand) Run(args []string) int {
	var opts SampleConfigOptions
	if _, code := c.ParseArgsWithHelp(&opts, args); code != -1 {
		return code
	}

	configPath := config.ConfigFileName

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		c.Printf("Error: %v\n", err)
		return 1
	}

	configExists := false
	if _, statErr := os.Stat(configPath); statErr == nil {
		configExists = true
		if !opts.Force {
			c.Printf("Error: %s already exists. Use --force to overwrite.\n", configPath)
			return 1
		}
	}

	if err := os.WriteFile(configPath, append([]byte(sampleConfigHeader), data...), 0o600); err != nil {
		c.Printf("Error: failed to write configuration file: %v\n", err)
		return 1
	}

	if configExists {
		c.Printf("Sample configuration written to %s (overwrote existing file)\n", configPath)
	} else {
		c.Printf("Sample configuration written to %s\n", configPath)
	}
	c.Println("Edit the file to customize reporting, then run 'commit-msg install'")
	return 0
}

// SampleConfigCommandFactory creates a new sample-config command instance
func SampleConfigCommandFactory() (cli.Command, error) {
	return NewSampleConfigCommand(), nil
}
