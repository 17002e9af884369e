// Package main provides the entry point for the Message Polisher HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "polisher",
	Short: "Message Polisher HTTP API Server",
	Long:  "Message Polisher turns raw text into polished corporate messages with selectable tone, length, and medium, via REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
