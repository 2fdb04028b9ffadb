// This is the main entry point for the strongid CLI.
// Build with: go build -o bin/strongid ./cmd/strongid
// Usage: strongid <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
