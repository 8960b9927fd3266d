//go:build mage

// Package main contains Mage build targets for paintquote developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"data/history",
	".paintquote/vocab",
}

// sampleVocab seeds the vocab directory so the override files are easy to find.
var sampleVocab = map[string]string{
	"brands.txt":   "# One brand per line. Merged with the built-in brand list.\n# Rust-Oleum\n",
	"finishes.txt": "# One finish per line. Merged with the built-in finish list.\n# velvet\n",
}

// Init creates the data and vocab directories and seeds the vocab files.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	for name, body := range sampleVocab {
		path := filepath.Join(".paintquote/vocab", name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "paintquote"
	cmdPkg  = "./cmd/paintquote"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	ldflags := "-X main.version=" + strings.TrimSpace(version)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample prices the worked example job description with the built binary.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "quote", sampleJob)
}

const sampleJob = "It's for Cici at 9090 Hillside Drive. We are not painting the ceilings. " +
	"The project is a 500 linear feet of interior painting. $50 a gallon bucket eggshell shirwin williams. " +
	"spread rate is 350 square feet per gallon. Ceilings are 9 feet tall. " +
	"We are not painting doors, or trim or windows. No primer. " +
	"labour is included in the cost per square foot at $1.50."
