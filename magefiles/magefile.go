//go:build mage

// SPDX-License-Identifier: MIT

// Package main provides build targets for the pqalg project using Mage.
//
// Usage:
//
//	mage build    Compile the pqalg binary to bin/
//	mage test     Run all tests with the race detector
//	mage bench    Run benchmarks for the algebra packages
//	mage lint     Run go vet and golangci-lint (when installed)
//	mage check    Run lint, then test
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "pqalg"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pqalg"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the pqalg binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every package's tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the benchmarks of the algebra packages.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem",
		"./word/...", "./tensor/...", "./lincomb/...", "./table/...")
}

// Lint runs go vet, then golangci-lint if it is on PATH.
func Lint() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		return nil
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}
