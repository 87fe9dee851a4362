// SPDX-License-Identifier: EPL-2.0

// Package main is the entry point for the audgraph CLI.
//
// Usage:
//
//	audgraph [flags] <command> [args]
//
// Commands:
//
//	build  - Build a signal graph from a command and save or print it
//	info   - Show duration, rate, size and peak of a WAV or text file
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audgraph/cmd/audgraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
