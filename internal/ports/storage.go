// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture: domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Storage persists tag indexes to durable storage. The backing store (bbolt)
// is project-scoped: each projectID gets its own namespace.
//
// Crash safety: SaveIndex must be transactional. A crash mid-write must not
// corrupt previously committed data.
type Storage interface {
	// SaveIndex persists the full tag index for a project.
	// Overwrites any prior index for this projectID.
	SaveIndex(projectID string, index *Index) error

	// LoadIndex retrieves the tag index for a project.
	// Returns nil, nil if no index exists (fresh project).
	LoadIndex(projectID string) (*Index, error)

	// DeleteProject removes all data for a project.
	// Idempotent: deleting a nonexistent project is not an error.
	DeleteProject(projectID string) error
}
