package main

import (
	"fmt"
	"os"
)

// ============================================================================
// FAMILY CLI — Lifespan statistics for a family tree
// ============================================================================

const version = "0.3.0"

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 2
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
