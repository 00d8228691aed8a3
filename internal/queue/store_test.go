package queue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store, clock := newTestStore(t)

	take(t, store, "小王", PriorityHigh)
	clock.Advance(time.Minute)
	take(t, store, "Alice", PriorityLow)
	store.CallNext()
	clock.Advance(5 * time.Minute)
	store.Complete("解决了")
	clock.Advance(time.Second)
	take(t, store, "Bob", PriorityMedium)
	store.CallNext()
	store.Skip()

	reloaded, warning := Open(store.Path())
	require.Empty(t, warning)

	if diff := cmp.Diff(store.All(), reloaded.All()); diff != "" {
		t.Errorf("snapshot round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	store, warning := Open(filepath.Join(t.TempDir(), "nope", "queue.json"))

	require.Empty(t, warning, "a missing snapshot is a normal empty store")
	require.Zero(t, store.Len())
}

func TestOpenCorruptSnapshot(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		content string
	}{
		{"truncated json", `[{"id": "x", "num`},
		{"not an array", `{"id": "x"}`},
		{"not json at all", "hello queue"},
		{"array of wrong shape", `[42, "x"]`},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "queue.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			store, warning := Open(path)

			require.NotEmpty(t, warning, "corrupt content should be flagged")
			require.Zero(t, store.Len(), "corrupt content falls back to an empty store")

			// The empty store is usable and numbering restarts.
			store.now = newTestClock().Now
			ticket, err := store.Create(CreateInput{Name: "fresh", Description: "start"})
			require.NoError(t, err)
			require.Equal(t, "001", ticket.Number)
		})
	}
}

func TestOpenNullSnapshot(t *testing.T) {
	t.Parallel()

	// JSON null decodes to an empty set without a warning; it is how an
	// uninitialized value serializes, not corruption.
	path := filepath.Join(t.TempDir(), "queue.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o600))

	store, warning := Open(path)
	require.Empty(t, warning)
	require.Zero(t, store.Len())
}

func TestWriteFailuresAreSwallowed(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	store.write = func(string, []byte) error {
		return errors.New("disk full")
	}

	ticket, err := store.Create(CreateInput{Name: "小王", Description: "测试"})

	require.NoError(t, err, "a failed save must not fail the operation")
	require.Equal(t, "001", ticket.Number)
	require.Equal(t, 1, store.Len(), "the in-memory mutation stands")

	if _, ok := store.CallNext(); !ok {
		t.Error("later operations keep working after a failed save")
	}
}

func TestEmptySnapshotIsAnArray(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	take(t, store, "temp", PriorityLow)
	store.Reset()

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))
}

func TestPersistAcrossOperations(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	take(t, store, "durable", PriorityMedium)

	// Every mutation rewrites the snapshot; a reload between operations
	// sees the latest state.
	reloaded, _ := Open(store.Path())
	require.Equal(t, 1, reloaded.Len())

	store.CallNext()

	reloaded, _ = Open(store.Path())
	current, busy := reloaded.InProgress()
	require.True(t, busy)
	require.Equal(t, "durable", current.Name)
}
