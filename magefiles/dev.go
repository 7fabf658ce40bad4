//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Dev namespace methods
// Note: Dev and Build types are defined in main.go

// Run builds the binary and prints the policy
func (Dev) Run() error {
	mg.Deps(Build.Binary)
	return sh.RunV("./"+binaryPath, "policy")
}

// Hook installs the freshly built binary as this repository's commit-msg hook
func (Dev) Hook() error {
	mg.Deps(Build.Install)
	return sh.RunV("commit-msg", "install")
}

// Sample checks a message file with the freshly built binary, reporting every violation
func (Dev) Sample(path string) error {
	mg.Deps(Build.Binary)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("message file not found: %w", err)
	}
	return sh.RunV("./"+binaryPath, "check", "--all", "--verbose", path)
}
