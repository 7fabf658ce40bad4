//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Version displays the version the binary would be stamped with
func Version() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		return err
	}
	fmt.Printf("Version: %s\n", version)
	return nil
}

// Commit displays the current git commit
func Commit() error {
	commit, err := sh.Output("git", "rev-parse", "HEAD")
	if err != nil {
		return err
	}
	fmt.Printf("Commit: %s\n", commit)
	return nil
}
