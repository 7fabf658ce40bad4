package commands

// Git hook type constants
const (
	hookTypeCommitMsg = "commit-msg"
)

// Common constants used across command implementations
const (
	// Command usage patterns
	OptionsUsage = "[OPTIONS]"

	// BinaryName is the executable the installed hook calls
	BinaryName = "commit-msg"

	// HookMarker identifies hook scripts written by this tool
	HookMarker = "# Generated by go-commit-msg"

	// Test message templates
	ValidCommitMessage = "feat: add login\n\nimplements oauth [#123]\n\n"
	// MissingSeparatorMessage has no blank line after the title
	MissingSeparatorMessage = "fix bug\nbody text\n\n\n"
)
