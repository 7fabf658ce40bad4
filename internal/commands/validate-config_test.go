package commands

import (
	"strings"
	"testing"
)

func TestValidateConfigCommand_Synopsis(t *testing.T) {
	cmd := NewValidateConfigCommand()
	expected := "Validate configuration file"
	if synopsis := cmd.Synopsis(); synopsis != expected {
		t.Errorf("Expected synopsis '%s', got '%s'", expected, synopsis)
	}
}

func TestValidateConfigCommand_Run(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		args         []string
		expectExit   int
		expectOutput string
	}{
		{
			name:         "valid yaml",
			file:         ".commit-msg.yaml",
			content:      "color: never\nwarnings: advisory\nreport: all\n",
			expectExit:   0,
			expectOutput: "Configuration is valid",
		},
		{
			name:         "empty file uses defaults",
			file:         ".commit-msg.yaml",
			content:      "",
			expectExit:   0,
			expectOutput: "Configuration is valid",
		},
		{
			name:         "valid toml",
			file:         "commit-msg.toml",
			content:      "color = \"always\"\nreport = \"first\"\n",
			args:         []string{"--config", "commit-msg.toml"},
			expectExit:   0,
			expectOutput: "Configuration is valid",
		},
		{
			name:         "invalid warnings value",
			file:         ".commit-msg.yaml",
			content:      "warnings: loud\n",
			expectExit:   1,
			expectOutput: "configuration is invalid",
		},
		{
			name:         "malformed yaml",
			file:         ".commit-msg.yaml",
			content:      "color: [auto\n",
			expectExit:   1,
			expectOutput: "failed to load configuration",
		},
		{
			name:         "missing file",
			file:         "unrelated.yaml",
			content:      "color: auto\n",
			expectExit:   1,
			expectOutput: "failed to load configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdirTemp(t)
			writeFile(t, dir, tt.file, tt.content)

			cmd := NewValidateConfigCommand()
			out := capture(&cmd.BaseCommand)

			if exitCode := cmd.Run(tt.args); exitCode != tt.expectExit {
				t.Errorf("Expected exit code %d, got %d\noutput:\n%s", tt.expectExit, exitCode, out.String())
			}
			if !strings.Contains(out.String(), tt.expectOutput) {
				t.Errorf("output should contain %q, got: %s", tt.expectOutput, out.String())
			}
		})
	}
}
