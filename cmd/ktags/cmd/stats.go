package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/app"
	"github.com/corey/ktags/internal/ports"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	store, err := openStore(root)
	if err != nil {
		return err
	}
	defer store.Close()

	idx, err := store.LoadIndex(app.ProjectID(root))
	if err != nil {
		return err
	}
	if idx == nil {
		return fmt.Errorf("no index found. Build one with: ktags index")
	}

	byKind := make(map[ports.TagKind]int)
	for _, meta := range idx.Meta {
		byKind[meta.Kind]++
	}

	fmt.Printf("files:      %d\n", len(idx.Files))
	fmt.Printf("tags:       %d\n", len(idx.Meta))
	fmt.Printf("names:      %d\n", len(idx.Names))
	for _, kind := range []ports.TagKind{ports.KindClass, ports.KindFunction, ports.KindTypealias, ports.KindConst} {
		fmt.Printf("%-11s %d\n", string(kind)+":", byKind[kind])
	}
	return nil
}
