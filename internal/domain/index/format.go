package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/ktags/internal/ports"
)

// FormatTagLine renders one tag in ctags file format with a numeric ex
// command: name<TAB>file<TAB>line;"<TAB>kind-letter.
func FormatTagLine(tag ports.Tag, file string) string {
	return fmt.Sprintf("%s\t%s\t%d;\"\t%s", tag.Name, file, tag.Line, tag.Kind.Letter())
}

// FormatTagsFile renders a full ctags-compatible tags file body for the given
// per-file tag lists: sorted by tag name as editors expect.
func FormatTagsFile(tagsByFile map[string][]ports.Tag) string {
	var lines []string
	for file, tags := range tagsByFile {
		for _, tag := range tags {
			lines = append(lines, FormatTagLine(tag, file))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// FormatPretty renders one tag for terminal scan output.
func FormatPretty(tag ports.Tag) string {
	return fmt.Sprintf("%6d  %-9s %s", tag.Line, tag.Kind, tag.Name)
}

// FormatHit renders one search hit for terminal output.
func FormatHit(h Hit) string {
	return fmt.Sprintf("%s:%d  %-9s %s", h.File, h.Line, h.Kind, h.Name)
}
