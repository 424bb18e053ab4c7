// Package nvram is a file-backed byte-addressable persistent store with
// explicit commit semantics. It stands in for the EEPROM of the appliance:
// writes land in a volatile shadow of the region and become durable only
// when Commit flushes and syncs the backing file.
package nvram

import (
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	path  string
	buf   []byte
	dirty bool
}

// Open loads the region from path. A missing backing file yields a zeroed
// region of the given size (first boot).
func Open(path string, size int) (*Store, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid store size %d", size)
	}

	buf := make([]byte, size)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		copy(buf, data)
	case os.IsNotExist(err):
		// First boot, zeroed region.
	default:
		return nil, fmt.Errorf("failed to read store %q: %w", path, err)
	}

	return &Store{path: path, buf: buf}, nil
}

func (s *Store) Read(addr, n int) ([]byte, error) {
	if addr < 0 || n < 0 || addr+n > len(s.buf) {
		return nil, fmt.Errorf("read out of range: addr=%d n=%d size=%d", addr, n, len(s.buf))
	}
	out := make([]byte, n)
	copy(out, s.buf[addr:addr+n])
	return out, nil
}

// Write updates the volatile shadow of the region. The change is not
// durable until Commit succeeds.
func (s *Store) Write(addr int, b []byte) error {
	if addr < 0 || addr+len(b) > len(s.buf) {
		return fmt.Errorf("write out of range: addr=%d n=%d size=%d", addr, len(b), len(s.buf))
	}
	copy(s.buf[addr:], b)
	s.dirty = true
	return nil
}

// Commit flushes the region to the backing file and syncs it.
func (s *Store) Commit() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open store %q: %w", s.path, err)
	}
	if _, err := f.Write(s.buf); err != nil {
		f.Close()
		return fmt.Errorf("failed to write store %q: %w", s.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync store %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close store %q: %w", s.path, err)
	}

	s.dirty = false
	return nil
}

// Close commits any uncommitted writes.
func (s *Store) Close() error {
	if !s.dirty {
		return nil
	}
	return s.Commit()
}
