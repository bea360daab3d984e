// Package app orchestrates the tool: file discovery, scanning, index
// construction, and project paths. It wires the kotlin scanner and the name
// index together and hands the result to whatever storage the caller chose.
package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corey/ktags/internal/domain/index"
	"github.com/corey/ktags/internal/domain/kotlin"
	"github.com/corey/ktags/internal/ports"
)

// IndexResult holds statistics from a BuildIndex operation.
type IndexResult struct {
	FileCount int
	TagCount  int
	NameCount int
}

// maxFileSize caps how large a source file the indexer will scan.
const maxFileSize = 1 << 20

// skipDirs lists directories to skip during indexing (matches the watcher).
var skipDirs = map[string]bool{
	".git":         true,
	".idea":        true,
	".vscode":      true,
	".gradle":      true,
	".ktags":       true,
	"build":        true,
	"out":          true,
	"node_modules": true,
}

// IsKotlinFile returns true for .kt and .kts paths.
func IsKotlinFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".kt" || ext == ".kts"
}

// ScanFile reads one Kotlin file and returns its tags in source order.
func ScanFile(path string) ([]ports.Tag, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return kotlin.ScanBytes(source), nil
}

// BuildIndex walks a project root, scans every Kotlin file under the size
// cap, and folds the emitted tags into a fresh index. Each tag is findable
// under its lowercased full name and under each of its subtokens.
// Unreadable files are skipped, not fatal.
func BuildIndex(root string) (*ports.Index, *IndexResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}

	var files []string
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable
		}
		if info.IsDir() {
			if skipDirs[info.Name()] && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if IsKotlinFile(path) && info.Size() <= maxFileSize {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Strings(files)

	idx := ports.NewIndex()
	var tagCount int
	var fileID uint32

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		source, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		fileID++
		relPath, _ := filepath.Rel(absRoot, path)
		idx.Files[fileID] = &ports.FileMeta{
			Path:         relPath,
			LastModified: info.ModTime().Unix(),
			Size:         info.Size(),
		}

		for _, tag := range kotlin.ScanBytes(source) {
			ref := ports.TagRef{FileID: fileID, Line: uint32(tag.Line)}
			idx.Meta[ref] = &ports.TagMeta{Name: tag.Name, Kind: tag.Kind, Offset: tag.Offset}
			tagCount++

			// Dedupe keys so a ref lands once per posting list even when a
			// subtoken equals the lowercased full name.
			keys := map[string]bool{strings.ToLower(tag.Name): true}
			for _, tok := range index.Tokenize(tag.Name) {
				keys[tok] = true
			}
			for key := range keys {
				idx.Names[key] = append(idx.Names[key], ref)
			}
		}
	}

	result := &IndexResult{
		FileCount: len(idx.Files),
		TagCount:  tagCount,
		NameCount: len(idx.Names),
	}
	return idx, result, nil
}
