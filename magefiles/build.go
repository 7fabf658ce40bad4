//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Build namespace methods
// Note: Build type is defined in main.go

const (
	binaryPath = "bin/commit-msg"
	mainPkg    = "./cmd/commit-msg"
)

// Binary builds the main binary
func (Build) Binary() error {
	fmt.Println("Building go-commit-msg...")
	return sh.Run("go", "build", "-ldflags", ldflags(), "-o", binaryPath, mainPkg)
}

// Install installs the binary to $GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing go-commit-msg...")
	return sh.Run("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Debug builds with debug flags
func (Build) Debug() error {
	fmt.Println("Building go-commit-msg with debug flags...")
	return sh.Run("go", "build", "-gcflags", "all=-N -l", "-o", binaryPath+"-debug", mainPkg)
}

// ldflags stamps the version variables read by main
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "none"
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s", version, commit)
}
