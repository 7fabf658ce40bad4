package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blairham/go-commit-msg/pkg/git"
)

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Out         io.Writer
	Name        string
	Description string
	Usage       string
	Examples    []Example
	Notes       []string
}

// CommonOptions defines options shared across multiple commands
type CommonOptions struct {
	Color   string `long:"color"   description:"Whether to use color in output" choice:"auto" choice:"always" choice:"never"`
	Config  string `long:"config"  description:"Path to config file"            default:".commit-msg.yaml"                 short:"c"`
	Help    bool   `long:"help"    description:"Show this help message"                                                    short:"h"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"                                                     short:"v"`
}

// GitRepositoryCommand provides common git repository functionality
type GitRepositoryCommand struct {
	BaseCommand
}

// RequireGitRepository ensures we're in a git repository and returns it
func (grc *GitRepositoryCommand) RequireGitRepository() (*git.Repository, error) {
	repo, err := git.NewRepository("")
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return repo, nil
}

// newParser builds a go-flags parser with the command's usage line
func (bc *BaseCommand) newParser(opts any) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = bc.Usage
	if parser.Usage == "" {
		parser.Usage = OptionsUsage
	}
	return parser
}

// ParseArgsWithHelp parses arguments into opts. The returned code is -1
// when the command should continue, otherwise the exit code to return.
func (bc *BaseCommand) ParseArgsWithHelp(opts any, args []string) ([]string, int) {
	remaining, err := bc.newParser(opts).ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, 0 // Help was shown, exit gracefully
		}
		bc.Printf("Error parsing arguments: %v\n", err)
		return nil, 1
	}

	return remaining, -1
}

// GenerateHelp creates standardized help output
func (bc *BaseCommand) GenerateHelp(opts any) string {
	formatter := &HelpFormatter{
		Command:     bc.Name,
		Description: bc.Description,
		Examples:    bc.Examples,
		Notes:       bc.Notes,
	}
	return formatter.FormatHelp(bc.newParser(opts))
}

// Writer returns where command output goes, stdout unless overridden
func (bc *BaseCommand) Writer() io.Writer {
	if bc.Out == nil {
		return os.Stdout
	}
	return bc.Out
}

// Printf writes formatted output to the command's writer
func (bc *BaseCommand) Printf(format string, args ...any) {
	fmt.Fprintf(bc.Writer(), format, args...)
}

// Println writes a line to the command's writer
func (bc *BaseCommand) Println(args ...any) {
	fmt.Fprintln(bc.Writer(), args...)
}
