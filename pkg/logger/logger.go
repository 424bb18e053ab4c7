package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"pinhole-firmware/pkg/globals"
)

const maxEntries = 500

type Entry struct {
	Time string `json:"time"`
	Msg  string `json:"msg"`
}

type sink struct {
	mu      sync.Mutex
	entries []Entry
}

var s *sink

// Init tees the standard logger to stdout and a bounded buffer persisted
// in the firmware data directory.
func Init() {
	s = &sink{entries: load()}
	log.SetOutput(io.MultiWriter(os.Stdout, s))
}

func (sk *sink) Write(p []byte) (int, error) {
	sk.mu.Lock()
	defer sk.mu.Unlock()

	sk.entries = append(sk.entries, Entry{
		Time: time.Now().Format(time.RFC3339),
		Msg:  strings.TrimRight(string(p), "\n"),
	})

	if len(sk.entries) > maxEntries {
		sk.entries = sk.entries[len(sk.entries)-maxEntries:]
	}

	save(sk.entries)
	return len(p), nil
}

// Entries returns a copy of the buffered log entries
func Entries() []Entry {
	if s == nil {
		return []Entry{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry{}, s.entries...)
}

func load() []Entry {
	data, err := os.ReadFile(globals.LogsPath)
	if err != nil {
		return []Entry{}
	}
	var entries []Entry
	json.Unmarshal(data, &entries)
	return entries
}

func save(entries []Entry) {
	data, _ := json.Marshal(entries)
	os.MkdirAll(globals.FirmwareDataDir, 0755)
	os.WriteFile(globals.LogsPath, data, 0644)
}
