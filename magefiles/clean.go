//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
)

// Clean namespace methods
// Note: Clean type is defined in main.go

// All removes all build artifacts
func (Clean) All() error {
	fmt.Println("Cleaning all build artifacts...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	return os.RemoveAll("dist")
}

// Coverage removes coverage files
func (Clean) Coverage() error {
	fmt.Println("Cleaning coverage files...")
	for _, file := range []string{"coverage.out", "coverage.html"} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
