package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem paths under the .ktags/ project
// directory. Pre-computed strings; nothing touches the disk until EnsureDirs.
type Paths struct {
	Root string // .ktags/
	DB   string // .ktags/ktags.db
}

// NewPaths constructs resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".ktags")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "ktags.db"),
	}
}

// EnsureDirs creates the .ktags/ directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}

// ProjectID returns the storage bucket key for a project root: its absolute
// path, so the same database file can hold several projects without clashes.
func ProjectID(projectRoot string) string {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return projectRoot
	}
	return abs
}
