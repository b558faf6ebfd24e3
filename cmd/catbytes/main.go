// ABOUTME: Command-line entry point for the CatBytes library
// ABOUTME: Runs adoption searches, email checks, ad generation and photo identification from a terminal

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
