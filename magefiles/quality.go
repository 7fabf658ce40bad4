//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Quality namespace methods
// Note: Quality and Test types are defined in main.go

const (
	golangciLint = "github.com/golangci/golangci-lint/v2/cmd/golangci-lint@v2.11.4"
	gofumpt      = "mvdan.cc/gofumpt@v0.9.2"
)

// Lint runs golangci-lint
func (Quality) Lint() error {
	fmt.Println("Running linter...")
	return sh.RunV("go", "run", golangciLint, "run", "./...")
}

// Format formats the code with gofumpt
func (Quality) Format() error {
	fmt.Println("Formatting code with gofumpt...")
	if err := sh.Run("go", "run", gofumpt, "-l", "-w", "."); err != nil {
		return fmt.Errorf("gofumpt failed: %w", err)
	}
	return nil
}

// Vet runs go vet
func (Quality) Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}

// Modernize runs the Go modernize tool to update code to modern Go patterns
func (Quality) Modernize() error {
	fmt.Println("Running Go modernize tool...")
	return sh.Run(
		"go",
		"run",
		"golang.org/x/tools/gopls/internal/analysis/modernize/cmd/modernize@latest",
		"-fix",
		"-test",
		"./...",
	)
}

// All runs all quality checks
func (Quality) All() {
	mg.Deps(Quality.Format, Quality.Vet, Quality.Lint, Test.Unit)
}
