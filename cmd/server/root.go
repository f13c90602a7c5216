package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agritrack",
	Short: "AgriTrack - harvest tracking service",
	Long: `AgriTrack tracks agricultural harvests: each harvest has a worker
roster and accumulates daily weight records per worker.

Run 'agritrack serve' to start the server, or 'agritrack import' to load
harvests from a JSON file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}
