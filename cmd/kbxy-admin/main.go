// Package main is the entry point for the kbxy monster curation tool
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kbxy-admin",
	Short: "kbxy monster database curation tool",
	Long: `kbxy-admin maintains the monster database: it imports and generates
records, runs derivation passes over them, and manages the tag registry and
collections.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/admin.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(collectionsCmd)
}
