package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/app"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete the project's stored index",
	RunE:  runWipe,
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	store, err := openStore(root)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteProject(app.ProjectID(root)); err != nil {
		return err
	}
	fmt.Println("index wiped")
	return nil
}
