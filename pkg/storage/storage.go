package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"syscall"
)

// Card exposes the removable storage medium as a flat namespace of files
// at its root. Image files are created once, written once and closed once,
// never overwritten.
type Card struct {
	root    string
	mounted bool
}

func New(root string) *Card {
	return &Card{root: root}
}

// Mount prepares the medium in its most compatible mode. The mount point
// must already exist and be a directory.
func (c *Card) Mount() error {
	info, err := os.Stat(c.root)
	if err != nil {
		return fmt.Errorf("failed to mount card at %q: %w", c.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("card root %q is not a directory", c.root)
	}

	c.mounted = true

	if free, err := c.FreeSpace(); err == nil {
		log.Printf("Card mounted at %q (%d MB free)", c.root, free/(1024*1024))
	}
	return nil
}

// MediaPresent reports whether a readable medium is behind the mount
// point.
func (c *Card) MediaPresent() bool {
	if !c.mounted {
		return false
	}
	var stat syscall.Statfs_t
	if err := syscall.Statfs(c.root, &stat); err != nil {
		return false
	}
	return stat.Blocks > 0
}

// CreateFile creates a new file at the card root.
func (c *Card) CreateFile(name string) (io.WriteCloser, error) {
	if !c.mounted {
		return nil, fmt.Errorf("card not mounted")
	}

	path := filepath.Join(c.root, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	return f, nil
}

// FreeSpace returns the free space in bytes on the medium.
func (c *Card) FreeSpace() (int64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(c.root, &stat); err != nil {
		return 0, fmt.Errorf("failed to get filesystem stats: %w", err)
	}
	return int64(stat.Bavail) * int64(stat.Bsize), nil
}
