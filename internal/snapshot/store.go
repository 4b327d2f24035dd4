// Package snapshot persists a cinema aggregate as a single JSON file and
// reconstructs it later. Writes are atomic: the snapshot is written to a
// temporary file and renamed into place, with an optional backup of the
// previous file, so a partial snapshot is never visible. All failures in
// this package wrap ErrSnapshot, keeping persistence faults distinct from
// the domain's validation and reservation error kinds.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kinoteka/cinema-core/internal/cinema"
	"github.com/kinoteka/cinema-core/internal/clock"
)

// ErrSnapshot is the single failure kind for persistence: unreadable or
// unwritable files, malformed JSON, and snapshots whose structure does not
// reconstruct a valid cinema.
var ErrSnapshot = errors.New("snapshot")

// Store reads and writes cinema snapshots at a fixed path.
type Store struct {
	path   string
	backup bool
	clk    clock.Clock
}

// NewStore builds a Store. When backup is set, an existing snapshot is
// copied to <path>.bak before being overwritten. A nil clk falls back to
// the system clock.
func NewStore(path string, backup bool, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.System()
	}
	return &Store{path: path, backup: backup, clk: clk}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Save writes the snapshot to the store's path.
func (s *Store) Save(snap cinema.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrSnapshot, s.path, err)
	}
	if s.backup {
		if err := s.backupExisting(); err != nil {
			return err
		}
	}
	// Write to a temp file in the target directory and rename so readers
	// never observe a partially written snapshot.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: unable to write cinema data to %s: %v", ErrSnapshot, s.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: unable to write cinema data to %s: %v", ErrSnapshot, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: unable to write cinema data to %s: %v", ErrSnapshot, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: unable to write cinema data to %s: %v", ErrSnapshot, s.path, err)
	}
	return nil
}

func (s *Store) backupExisting() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: backup %s: %v", ErrSnapshot, s.path, err)
	}
	if err := os.WriteFile(s.path+".bak", data, 0o644); err != nil {
		return fmt.Errorf("%w: backup %s: %v", ErrSnapshot, s.path, err)
	}
	return nil
}

// Load reads and decodes the snapshot file. The decoder rejects fields
// outside the snapshot shape.
func (s *Store) Load() (cinema.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return cinema.Snapshot{}, fmt.Errorf("%w: unable to load cinema data from %s: %v", ErrSnapshot, s.path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var snap cinema.Snapshot
	if err := dec.Decode(&snap); err != nil {
		return cinema.Snapshot{}, fmt.Errorf("%w: unable to load cinema data from %s: %v", ErrSnapshot, s.path, err)
	}
	return snap, nil
}

// SaveCinema snapshots the aggregate and writes it out.
func (s *Store) SaveCinema(c *cinema.Cinema) error {
	return s.Save(c.Snapshot())
}

// LoadCinema reads the snapshot file and reconstructs the aggregate.
// Structural defects surfaced by reconstruction are reported as snapshot
// failures, not as domain validation errors.
func (s *Store) LoadCinema() (*cinema.Cinema, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}
	c, err := cinema.FromSnapshot(snap, s.clk)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to load cinema data from %s: %v", ErrSnapshot, s.path, err)
	}
	return c, nil
}
