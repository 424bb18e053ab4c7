package nvram

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileIsZeroed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvram.bin")

	s, err := Open(path, 4)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}

	b, err := s.Read(0, 4)
	if err != nil {
		t.Fatalf("Read() err=%v", err)
	}
	if !bytes.Equal(b, []byte{0, 0, 0, 0}) {
		t.Errorf("fresh region = %v, want zeroes", b)
	}
}

func TestWriteCommitReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvram.bin")

	s, err := Open(path, 4)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if err := s.Write(1, []byte{0xAB, 0xCD}); err != nil {
		t.Fatalf("Write() err=%v", err)
	}
	if err := s.Commit(); err != nil {
		t.Fatalf("Commit() err=%v", err)
	}

	s2, err := Open(path, 4)
	if err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	b, err := s2.Read(0, 4)
	if err != nil {
		t.Fatalf("Read() err=%v", err)
	}
	if !bytes.Equal(b, []byte{0, 0xAB, 0xCD, 0}) {
		t.Errorf("reopened region = %v, want [0 171 205 0]", b)
	}
}

func TestUncommittedWriteIsVolatile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvram.bin")

	s, err := Open(path, 2)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if err := s.Write(0, []byte{0xFF}); err != nil {
		t.Fatalf("Write() err=%v", err)
	}

	s2, err := Open(path, 2)
	if err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	b, _ := s2.Read(0, 1)
	if b[0] != 0 {
		t.Errorf("uncommitted write reached storage: %v", b)
	}
}

func TestCloseCommitsDirtyWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvram.bin")

	s, err := Open(path, 2)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if err := s.Write(0, []byte{0x01}); err != nil {
		t.Fatalf("Write() err=%v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() err=%v", err)
	}

	s2, err := Open(path, 2)
	if err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	b, _ := s2.Read(0, 1)
	if b[0] != 0x01 {
		t.Errorf("dirty write lost on Close: %v", b)
	}
}

func TestOutOfRange(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nvram.bin"), 2)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}

	if _, err := s.Read(1, 2); err == nil {
		t.Error("Read past end succeeded")
	}
	if _, err := s.Read(-1, 1); err == nil {
		t.Error("Read at negative address succeeded")
	}
	if err := s.Write(1, []byte{1, 2}); err == nil {
		t.Error("Write past end succeeded")
	}
}

func TestOpenInvalidSize(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nvram.bin"), 0); err == nil {
		t.Error("Open with zero size succeeded")
	}
}
