// Package main provides the entry point for the agentrig CLI.
package main

import (
	"fmt"
	"os"

	"github.com/agentrig/agentrig/cmd/agentrig/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
