package index

import (
	"sort"
	"strings"

	"github.com/corey/ktags/internal/ports"
)

// Hit is one search match, resolved to its file path.
type Hit struct {
	File  string
	Line  uint32
	Name  string
	Kind  ports.TagKind
	Exact bool
}

// Search looks a query up in the index. Exact (case-insensitive) name matches
// come first; then entries matching every subtoken of the query, so
// "retry count" and "retryCount" both find maxRetryCount. Results are sorted
// by file path, then line.
func Search(idx *ports.Index, query string) []Hit {
	if idx == nil || query == "" {
		return nil
	}

	seen := make(map[ports.TagRef]bool)
	var hits []Hit

	add := func(ref ports.TagRef, exact bool) {
		if seen[ref] {
			return
		}
		seen[ref] = true
		meta := idx.Meta[ref]
		file := idx.Files[ref.FileID]
		if meta == nil || file == nil {
			return
		}
		hits = append(hits, Hit{
			File:  file.Path,
			Line:  ref.Line,
			Name:  meta.Name,
			Kind:  meta.Kind,
			Exact: exact,
		})
	}

	for _, ref := range idx.Names[strings.ToLower(query)] {
		add(ref, true)
	}

	// Subtoken matches: a ref qualifies when every query subtoken hits it.
	if toks := Tokenize(query); len(toks) > 0 {
		counts := make(map[ports.TagRef]int)
		for _, tok := range toks {
			for _, ref := range idx.Names[tok] {
				counts[ref]++
			}
		}
		for ref, n := range counts {
			if n == len(toks) {
				add(ref, false)
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Exact != hits[j].Exact {
			return hits[i].Exact
		}
		if hits[i].File != hits[j].File {
			return hits[i].File < hits[j].File
		}
		return hits[i].Line < hits[j].Line
	})
	return hits
}
