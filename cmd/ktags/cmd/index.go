package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/app"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build and persist the project tag index",
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	idx, result, err := app.BuildIndex(root)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	store, err := openStore(root)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveIndex(app.ProjectID(root), idx); err != nil {
		return fmt.Errorf("save index: %w", err)
	}

	fmt.Printf("indexed %d files, %d tags, %d names\n",
		result.FileCount, result.TagCount, result.NameCount)
	return nil
}
