//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Deps namespace methods
// Note: Deps type is defined in main.go

// Update updates all dependencies
func (Deps) Update() error {
	fmt.Println("Updating dependencies...")
	return sh.Run("go", "get", "-u", "./...")
}

// Tidy runs go mod tidy
func (Deps) Tidy() error {
	fmt.Println("Tidying dependencies...")
	return sh.Run("go", "mod", "tidy")
}

// Verify checks the module cache against go.sum
func (Deps) Verify() error {
	fmt.Println("Verifying dependencies...")
	return sh.Run("go", "mod", "verify")
}
