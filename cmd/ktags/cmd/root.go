package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/adapters/bbolt"
	"github.com/corey/ktags/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "ktags",
	Short: "ktags — Kotlin symbol indexer",
	Long:  "Extracts classes, functions, typealiases and constants from Kotlin sources into a queryable tag index.",
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// openStore opens the project's bbolt store, creating .ktags/ if needed.
func openStore(root string) (*bbolt.Store, error) {
	paths := app.NewPaths(root)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", paths.Root, err)
	}
	return bbolt.NewStore(paths.DB)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(wipeCmd)
}
