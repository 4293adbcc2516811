// Package main provides the workflow-assistant CLI
package main

import (
	"fmt"
	"os"
)

// Version information set during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("workflow-assistant %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
		return
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
