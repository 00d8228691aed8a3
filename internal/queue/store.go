package queue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600
)

// Store owns the full ticket set and its snapshot file.
//
// All mutation goes through the lifecycle operations in ops.go; every
// mutation rewrites the whole snapshot. Reads are projections recomputed
// from the slice on each call, never cached.
//
// Concurrent processes writing the same snapshot race last-write-wins.
// That is accepted, not coordinated.
type Store struct {
	path    string
	tickets []Ticket

	// now is the clock used to stamp lifecycle timestamps.
	// Tests override it for deterministic ordering.
	now func() time.Time

	// write persists encoded snapshot bytes. Tests override it to
	// inject write failures.
	write func(path string, data []byte) error
}

// Open loads the snapshot at path into a new store.
//
// A missing file is a normal empty store. Unreadable or corrupt content
// (including JSON that is not an array) also yields an empty store; the
// returned warning says why, and is empty when the load was clean.
// Load never fails hard: data-loss beats a crash at this layer.
func Open(path string) (*Store, string) {
	store := &Store{
		path:  path,
		now:   time.Now,
		write: writeSnapshot,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, ""
		}

		return store, fmt.Sprintf("cannot read snapshot %s: %v (starting empty)", path, err)
	}

	tickets, err := decodeSnapshot(data)
	if err != nil {
		return store, fmt.Sprintf("corrupt snapshot %s: %v (starting empty)", path, err)
	}

	store.tickets = tickets

	return store, ""
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tickets in the store, any status.
func (s *Store) Len() int {
	return len(s.tickets)
}

// All returns a copy of every ticket in insertion order.
func (s *Store) All() []Ticket {
	out := make([]Ticket, len(s.tickets))
	copy(out, s.tickets)

	return out
}

// persist rewrites the full snapshot. Write failures are swallowed: the
// in-memory mutation stands and the next successful write catches up.
func (s *Store) persist() {
	data, err := encodeSnapshot(s.tickets)
	if err != nil {
		return
	}

	_ = s.write(s.path, data)
}

func writeSnapshot(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	return os.Chmod(path, filePerms)
}

func encodeSnapshot(tickets []Ticket) ([]byte, error) {
	// Encode nil as [] so an empty store round-trips as an array.
	if tickets == nil {
		tickets = []Ticket{}
	}

	data, err := json.MarshalIndent(tickets, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func decodeSnapshot(data []byte) ([]Ticket, error) {
	var tickets []Ticket

	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, err
	}

	return tickets, nil
}
