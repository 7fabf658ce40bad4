//go:build mage
// +build mage

package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test namespace methods
// Note: Test type is defined in main.go

var testPackages = []string{"./pkg/...", "./internal/...", "./cmd/..."}

// Unit runs unit tests with parallel execution
func (Test) Unit() error {
	fmt.Println("Running unit tests with parallel execution...")
	return sh.RunV("go", append([]string{"test", "-p", strconv.Itoa(packageParallelism())}, testPackages...)...)
}

// Race runs unit tests with the race detector
func (Test) Race() error {
	fmt.Println("Running unit tests with the race detector...")
	return sh.RunV("go", append([]string{"test", "-race"}, testPackages...)...)
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	return sh.RunV("go", append([]string{"test", "-coverprofile=coverage.out"}, testPackages...)...)
}

// CoverageHTML generates HTML coverage report
func (Test) CoverageHTML() error {
	mg.Deps(Test.Coverage)
	fmt.Println("Generating HTML coverage report...")
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Benchmark runs benchmark tests
func (Test) Benchmark() error {
	fmt.Println("Running benchmark tests...")
	return sh.RunV("go", "test", "-run", "^$", "-bench=.", "./pkg/lint")
}

// packageParallelism uses half the CPU cores, at least one
func packageParallelism() int {
	return max(runtime.NumCPU()/2, 1)
}
