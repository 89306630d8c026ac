// SPDX-License-Identifier: MIT

// Package main provides the pqalg CLI: inspect, multiply, export and store
// elements of A⊗A⊗A built from the table of structure constants.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pqalg:", err)
		if errors.Is(err, errUsage) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
	os.Exit(exitSuccess)
}
