package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/app"
	"github.com/corey/ktags/internal/domain/index"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search the stored index by tag name",
	Long:  "Looks a name or subtoken query up in the persisted index. Exact matches list first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
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

	hits := index.Search(idx, args[0])
	if len(hits) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, h := range hits {
		fmt.Println(index.FormatHit(h))
	}
	return nil
}
