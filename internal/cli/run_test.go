package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"wq/internal/cli"
)

func TestUsage(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	for _, args := range [][]string{{}, {"--help"}, {"-h"}} {
		stdout, _, code := c.Run(args...)
		if code != 0 {
			t.Fatalf("usage for %v should exit 0, got %d", args, code)
		}

		cli.AssertContains(t, stdout, "walk-up queue")

		for _, name := range []string{"take", "next", "done", "skip", "bump", "ls", "show", "stats", "board", "reset"} {
			cli.AssertContains(t, stdout, name)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.Run("frobnicate")
	if code != 1 {
		t.Fatalf("unknown command should exit 1, got %d", code)
	}

	cli.AssertContains(t, stderr, "unknown command: frobnicate")
}

func TestCommandHelp(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, code := c.Run("take", "--help")
	if code != 0 {
		t.Fatalf("command help should exit 0, got %d", code)
	}

	cli.AssertContains(t, stdout, "Usage: wq take <name>")
	cli.AssertContains(t, stdout, "--description")
}

func TestUnknownGlobalFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.Run("--verbose", "ls")
	if code != 1 {
		t.Fatalf("unknown global flag should exit 1, got %d", code)
	}

	cli.AssertContains(t, stderr, "unknown global flag")
}

func TestStoreOverride(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	custom := filepath.Join(c.Dir, "elsewhere", "tickets.json")

	c.MustRun("--store", custom, "take", "roamer", "-d", "off the beaten path")

	if _, err := os.Stat(custom); err != nil {
		t.Fatalf("override snapshot not written: %v", err)
	}

	if _, err := os.Stat(c.SnapshotPath()); !os.IsNotExist(err) {
		t.Error("default snapshot should not exist when --store is set")
	}

	// The default store doesn't see the ticket; the override does.
	if out := c.MustRun("ls"); out != "" {
		t.Errorf("default store should be empty, got:\n%s", out)
	}

	out := c.MustRun("--store", custom, "ls")
	cli.AssertContains(t, out, "roamer")
}

func TestProjectConfigPicksStore(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	configPath := filepath.Join(c.Dir, ".wq.json")
	err := os.WriteFile(configPath, []byte(`{
		// tickets live under the desk directory
		"store": "desk/tickets.json",
	}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	c.MustRun("take", "configured", "-d", "goes to the configured store")

	if _, statErr := os.Stat(filepath.Join(c.Dir, "desk", "tickets.json")); statErr != nil {
		t.Fatalf("configured snapshot not written: %v", statErr)
	}

	out := c.MustRun("print-config")
	cli.AssertContains(t, out, filepath.Join("desk", "tickets.json"))
	cli.AssertContains(t, out, ".wq.json")
}
