package ports

// TagKind classifies an extracted declaration.
type TagKind string

const (
	KindClass     TagKind = "class"
	KindFunction  TagKind = "function"
	KindTypealias TagKind = "typealias"
	KindConst     TagKind = "const"
)

// Letter returns the one-character kind code used in ctags file output.
func (k TagKind) Letter() string {
	switch k {
	case KindClass:
		return "c"
	case KindFunction:
		return "f"
	case KindTypealias:
		return "t"
	case KindConst:
		return "d"
	}
	return "?"
}

// Tag is a single extracted symbol: a declaration name, its kind, and the
// position of the token that named it. Tags are emitted in source order and
// never retained by the scanner; the sink owns them from the moment Emit
// returns.
type Tag struct {
	Name   string
	Kind   TagKind
	Line   int
	Offset int64
}

// TagRef is a compact reference to a tag location within an indexed project.
type TagRef struct {
	FileID uint32
	Line   uint32
}

// TagMeta holds the indexed details for one tag occurrence.
type TagMeta struct {
	Name   string
	Kind   TagKind
	Offset int64
}

// FileMeta describes one indexed source file.
type FileMeta struct {
	Path         string
	LastModified int64
	Size         int64
}

// Index is the searchable tag index for one project.
type Index struct {
	Names map[string][]TagRef // lowercased name / subtoken -> locations
	Meta  map[TagRef]*TagMeta // (file_id, line) -> tag details
	Files map[uint32]*FileMeta
}

// NewIndex returns an empty index with all maps allocated.
func NewIndex() *Index {
	return &Index{
		Names: make(map[string][]TagRef),
		Meta:  make(map[TagRef]*TagMeta),
		Files: make(map[uint32]*FileMeta),
	}
}
