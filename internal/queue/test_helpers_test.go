package queue

import (
	"path/filepath"
	"testing"
	"time"
)

// testClock is a controllable clock for deterministic timestamps.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 8, 25, 9, 0, 0, 0, time.Local)}
}

func (c *testClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward and returns the new time.
func (c *testClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)

	return c.t
}

// newTestStore returns an empty store backed by a temp snapshot file and
// a controllable clock.
func newTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "queue.json")

	store, warning := Open(path)
	if warning != "" {
		t.Fatalf("unexpected open warning: %s", warning)
	}

	clock := newTestClock()
	store.now = clock.Now

	return store, clock
}

// mustCreate creates a waiting ticket or fails the test.
func mustCreate(t *testing.T, store *Store, input CreateInput) Ticket {
	t.Helper()

	ticket, err := store.Create(input)
	if err != nil {
		t.Fatalf("create %+v: %v", input, err)
	}

	return ticket
}

// take is shorthand for creating a ticket with the given name and priority.
func take(t *testing.T, store *Store, name, priority string) Ticket {
	t.Helper()

	return mustCreate(t, store, CreateInput{
		Name:        name,
		Description: "needs help",
		Priority:    priority,
	})
}
