//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles dictddl, copygen and csvddl into bin/.
func Build() error {
	fmt.Println("Building...")
	return sh.Run("go", "build", "-o", "./bin/", "./cmd/...")
}

// Test runs all tests.
func Test() error {
	fmt.Println("Running Tests...")
	return sh.Run("go", "test", "./...")
}

// Race runs the tests with the race detector.
func Race() error {
	fmt.Println("Running Tests with -race...")
	return sh.Run("go", "test", "-race", "./...")
}

// Fuzz runs the identifier normalizer fuzz target for 30s.
func Fuzz() error {
	fmt.Println("Fuzzing ident.Normalize...")
	return sh.Run("go", "test", "-run", "^$", "-fuzz", "^FuzzNormalize$", "-fuzztime", "30s", "./internal/ident")
}

// Clean removes the bin directory.
func Clean() error {
	fmt.Println("Cleaning...")
	return os.RemoveAll("bin")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Running go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Check runs formatting and linting checks (fmt, vet).
func Check() error {
	mg.Deps(Fmt, Vet)
	return nil
}

// Fmt runs go fmt ./...
func Fmt() error {
	fmt.Println("Running go fmt...")
	return sh.Run("go", "fmt", "./...")
}

// Vet runs go vet ./...
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}
