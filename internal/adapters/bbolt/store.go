// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Each project gets its own top-level bucket holding a "tags"
// sub-bucket with three blobs: binary posting lists for the names map and gob
// for the meta and files maps. Writes are transactional — a crash mid-write
// cannot corrupt previously committed data.
package bbolt

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/ktags/internal/ports"
)

// Bucket and blob keys
var (
	bucketTags = []byte("tags")
	keyNames   = []byte("names")
	keyMeta    = []byte("meta")
	keyFiles   = []byte("files")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
// The 1s timeout makes a held file lock fail fast instead of hanging.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveIndex persists the full tag index for a project.
func (s *Store) SaveIndex(projectID string, idx *ports.Index) error {
	if idx == nil {
		return fmt.Errorf("nil index")
	}

	names, err := encodePostingLists(idx.Names)
	if err != nil {
		return fmt.Errorf("encode names: %w", err)
	}
	meta, err := encodeGob(idx.Meta)
	if err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}
	files, err := encodeGob(idx.Files)
	if err != nil {
		return fmt.Errorf("encode files: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		proj, err := tx.CreateBucketIfNotExists([]byte(projectID))
		if err != nil {
			return err
		}
		tb, err := proj.CreateBucketIfNotExists(bucketTags)
		if err != nil {
			return err
		}
		if err := tb.Put(keyNames, names); err != nil {
			return err
		}
		if err := tb.Put(keyMeta, meta); err != nil {
			return err
		}
		return tb.Put(keyFiles, files)
	})
}

// LoadIndex retrieves the tag index for a project.
// Returns nil, nil if no index exists (fresh project).
func (s *Store) LoadIndex(projectID string) (*ports.Index, error) {
	var names, meta, files []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		proj := tx.Bucket([]byte(projectID))
		if proj == nil {
			return nil
		}
		tb := proj.Bucket(bucketTags)
		if tb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := tb.Get(keyNames); v != nil {
			names = append([]byte(nil), v...)
		}
		if v := tb.Get(keyMeta); v != nil {
			meta = append([]byte(nil), v...)
		}
		if v := tb.Get(keyFiles); v != nil {
			files = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if names == nil && meta == nil && files == nil {
		return nil, nil
	}

	idx := ports.NewIndex()
	if names != nil {
		if idx.Names, err = decodePostingLists(names); err != nil {
			return nil, fmt.Errorf("decode names: %w", err)
		}
	}
	if meta != nil {
		if err := decodeGob(meta, &idx.Meta); err != nil {
			return nil, fmt.Errorf("decode meta: %w", err)
		}
	}
	if files != nil {
		if err := decodeGob(files, &idx.Files); err != nil {
			return nil, fmt.Errorf("decode files: %w", err)
		}
	}
	return idx, nil
}

// DeleteProject removes all data for a project.
// Idempotent: deleting a nonexistent project is not an error.
func (s *Store) DeleteProject(projectID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(projectID))
		if err == bolt.ErrBucketNotFound {
			return nil // idempotent
		}
		return err
	})
}
