package commands

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/blairham/go-commit-msg/pkg/config"
	"github.com/blairham/go-commit-msg/pkg/lint"
	"github.com/blairham/go-commit-msg/pkg/message"
	"github.com/blairham/go-commit-msg/pkg/report"
)

// CheckCommand validates a commit message. It is what the installed
// commit-msg hook runs.
type CheckCommand struct {
	GitRepositoryCommand
}

// CheckOptions holds command-line options for the check command
type CheckOptions struct {
	CommonOptions
	Rev      string `long:"rev"      description:"Validate the message of an existing commit instead of a file"`
	All      bool   `long:"all"      description:"Report every violation instead of stopping at the first" short:"a"`
	Advisory bool   `long:"advisory" description:"Report warnings without failing the hook"`
}

// NewCheckCommand creates a check command writing to the default output
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{GitRepositoryCommand{BaseCommand{
		Name:        "check",
		Description: "Validate a commit message against the commit message policy.",
		Usage:       "[OPTIONS] [MESSAGE_FILE]",
		Examples: []Example{
			{Command: "commit-msg check .git/COMMIT_EDITMSG", Description: "Validate a message file"},
			{Command: "commit-msg check", Description: "Validate the message of the commit in progress"},
			{Command: "commit-msg check --rev HEAD", Description: "Validate the last commit's message"},
			{Command: "commit-msg check --all msg.txt", Description: "Report every violation"},
			CommonExamples.Verbose,
		},
		Notes: []string{
			"positional arguments:",
			"  MESSAGE_FILE          file containing the commit message (default .git/COMMIT_EDITMSG)",
			"",
			"Lines starting with '#' are ignored, as is everything below git's scissors line.",
			"Any warning fails the hook unless --advisory or 'warnings: advisory' is set.",
		},
	}}}
}

// Help returns the help text for the check command
func (c *CheckCommand) Help() string {
	var opts CheckOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the check command
func (c *CheckCommand) Synopsis() string {
	return "Validate a commit message"
}

// Run executes the check command
func (c *CheckCommand) Run(args []string) int {
	var opts CheckOptions
	remaining, code := c.ParseArgsWithHelp(&opts, args)
	if code != -1 {
		return code
	}

	if len(remaining) > 1 {
		c.Printf("Error: expected at most one message file, got %d\n", len(remaining))
		return 1
	}
	if len(remaining) == 1 && opts.Rev != "" {
		c.Println("Error: --rev cannot be combined with a message file")
		return 1
	}

	cfg, err := c.loadConfig(&opts)
	if err != nil {
		c.Printf("Error: %v\n", err)
		return 1
	}

	formatter := report.NewFormatter(cfg.Color, cfg.Verbose)

	msg, source, err := c.loadMessage(&opts, remaining)
	if err != nil {
		formatter.PrintNote(c.Writer(), lint.SeverityError, err.Error())
		return 1
	}

	if cfg.Verbose {
		c.Printf("Checking commit message from %s\n", source)
		c.Printf("Report mode: %s, warnings: %s\n", cfg.Report, cfg.Warnings)
	}

	result := lint.Validate(msg, lint.Options{Mode: lint.Mode(cfg.Report)})
	formatter.PrintResult(c.Writer(), result)

	if result.Verdict() == lint.VerdictWarning && !cfg.WarningsBlock() {
		formatter.PrintNote(c.Writer(), lint.SeverityInfo, "Warnings are advisory; the commit is not blocked.")
	}

	return report.ExitCode(result.Verdict(), cfg.WarningsBlock())
}

// loadConfig reads the config file and applies command-line overrides.
// A missing default config file is not an error.
func (c *CheckCommand) loadConfig(opts *CheckOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.Config == config.ConfigFileName {
		cfg, err = config.LoadConfigOrDefault(opts.Config)
	} else {
		cfg, err = config.LoadConfig(opts.Config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.All {
		cfg.Report = config.ReportAll
	}
	if opts.Advisory {
		cfg.Warnings = config.WarningsAdvisory
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration is invalid: %w", err)
	}
	return cfg, nil
}

// loadMessage returns the message to validate and a description of where it came from
func (c *CheckCommand) loadMessage(opts *CheckOptions, remaining []string) (*message.Message, string, error) {
	if len(remaining) == 1 {
		msg, err := message.Read(remaining[0])
		return msg, remaining[0], err
	}

	repo, err := c.RequireGitRepository()
	if err != nil {
		return nil, "", err
	}

	if opts.Rev != "" {
		text, err := repo.CommitMessage(opts.Rev)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read commit %s: %w", opts.Rev, err)
		}
		return message.Parse(text), "commit " + opts.Rev, nil
	}

	path := repo.MessagePath()
	msg, err := message.Read(path)
	return msg, path, err
}

// CheckCommandFactory creates a new check command instance
func CheckCommandFactory() (cli.Command, error) {
	return NewCheckCommand(), nil
}
