package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/app"
	"github.com/corey/ktags/internal/domain/index"
	"github.com/corey/ktags/internal/ports"
)

var scanFormat string

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan Kotlin files and print their tags",
	Long:  "Scans the given files or directories (cwd by default) and prints extracted tags without touching the index.",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", "pretty", "output format: pretty or tags (ctags file lines)")
}

func runScan(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{projectRoot()}
	}

	files, err := collectKotlinFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Kotlin files found")
	}

	tagsByFile := make(map[string][]ports.Tag, len(files))
	for _, file := range files {
		tags, err := app.ScanFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", file, err)
			continue
		}
		tagsByFile[file] = tags
	}

	switch scanFormat {
	case "tags":
		if body := index.FormatTagsFile(tagsByFile); body != "" {
			fmt.Println(body)
		}
	case "pretty":
		for _, file := range files {
			tags := tagsByFile[file]
			if len(tags) == 0 {
				continue
			}
			fmt.Println(file)
			for _, tag := range tags {
				fmt.Println(index.FormatPretty(tag))
			}
		}
	default:
		return fmt.Errorf("unknown format %q", scanFormat)
	}
	return nil
}

// collectKotlinFiles expands files and directories into a sorted list of
// Kotlin source paths.
func collectKotlinFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if !info.IsDir() && app.IsKotlinFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
