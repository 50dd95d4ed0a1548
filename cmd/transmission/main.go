// SPDX-License-Identifier: MIT
// Package: transmission/cmd/transmission
//
// main.go - entry point.

// Command transmission reconstructs caterpillars from status sequences.
//
//	transmission tree <file>           analyse an edge-list tree
//	transmission seq <file>            reconstruct from a sequence file
//	transmission random tree|cat|sparse <n>
//	transmission random seq <n> <avg>
//	transmission batch <n> <count>     concurrent round trips
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
