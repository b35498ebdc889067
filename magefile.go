//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary = "wordmutate"
	pkg    = "./cmd/wordmutate"
)

// Default target when running mage without arguments
var Default = Build

// Build compiles the wordmutate binary into the repository root
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, pkg)
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dest := filepath.Join(home, "go", "bin", binary)
	fmt.Println("Installing to", dest)
	return sh.Copy(dest, binary)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
