package counter

import (
	"encoding/binary"
	"fmt"
)

// Store is the persistent byte store the counter lives in.
type Store interface {
	Read(addr, n int) ([]byte, error)
	Write(addr int, b []byte) error
	Commit() error
}

const width = 2 // uint16, little-endian

// Counter is the durable image counter. The in-memory value is advanced
// first and persisted second, so it is always >= the stored value; the
// stored value never decreases.
type Counter struct {
	store Store
	addr  int
	value uint16
}

func New(store Store, addr int) *Counter {
	return &Counter{store: store, addr: addr}
}

// Load reads the persisted value. A never-written store yields zero.
func (c *Counter) Load() error {
	b, err := c.store.Read(c.addr, width)
	if err != nil {
		return fmt.Errorf("failed to load counter: %w", err)
	}
	c.value = binary.LittleEndian.Uint16(b)
	return nil
}

// Value returns the in-memory counter value.
func (c *Counter) Value() uint16 {
	return c.value
}

// Next advances the in-memory value and returns it. The new value is not
// durable until Persist succeeds; a failure between the two permanently
// skips the value rather than reusing it.
func (c *Counter) Next() uint16 {
	c.value++
	return c.value
}

// Persist writes the in-memory value to the store and commits it.
func (c *Counter) Persist() error {
	var b [width]byte
	binary.LittleEndian.PutUint16(b[:], c.value)
	if err := c.store.Write(c.addr, b[:]); err != nil {
		return fmt.Errorf("failed to write counter: %w", err)
	}
	if err := c.store.Commit(); err != nil {
		return fmt.Errorf("failed to commit counter: %w", err)
	}
	return nil
}
