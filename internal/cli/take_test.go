package cli_test

import (
	"strings"
	"testing"

	"wq/internal/cli"
)

func TestTakeCommand(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "assigns the first number",
			args:       []string{"take", "小王", "-d", "测试"},
			wantExit:   0,
			wantStdout: "001",
		},
		{
			name:       "missing name",
			args:       []string{"take", "-d", "needs help"},
			wantExit:   1,
			wantStderr: "name is required",
		},
		{
			name:       "blank name",
			args:       []string{"take", "   ", "-d", "needs help"},
			wantExit:   1,
			wantStderr: "name is required",
		},
		{
			name:       "missing description",
			args:       []string{"take", "Alice"},
			wantExit:   1,
			wantStderr: "description is required",
		},
		{
			name:       "invalid priority",
			args:       []string{"take", "Alice", "-d", "x", "-p", "urgent"},
			wantExit:   1,
			wantStderr: "invalid priority",
		},
		{
			name:       "invalid minutes",
			args:       []string{"take", "Alice", "-d", "x", "-m", "-3"},
			wantExit:   1,
			wantStderr: "at least 1",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			stdout, stderr, code := c.Run(tt.args...)
			if code != tt.wantExit {
				t.Fatalf("exit = %d, want %d\nstderr: %s", code, tt.wantExit, stderr)
			}

			if tt.wantStdout != "" {
				cli.AssertContains(t, stdout, tt.wantStdout)
			}

			if tt.wantStderr != "" {
				cli.AssertContains(t, stderr, tt.wantStderr)
			}
		})
	}
}

func TestTakeSequentialNumbers(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if got := c.Take("小王", "测试"); got != "001" {
		t.Fatalf("first number = %q, want 001", got)
	}

	if got := c.Take("小李", "也是测试"); got != "002" {
		t.Fatalf("second number = %q, want 002", got)
	}

	snapshot := c.ReadSnapshot()
	cli.AssertContains(t, snapshot, `"小王"`)
	cli.AssertContains(t, snapshot, `"number": "002"`)
}

func TestTakeReportsPositionAhead(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.Take("first", "goes ahead")

	stdout, _, code := c.Run("take", "second", "-d", "queues behind")
	if code != 0 {
		t.Fatalf("take failed: %d", code)
	}

	cli.AssertContains(t, stdout, "1 ahead of you")
}

func TestTakeHighPriorityJumpsQueue(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.Take("slow", "routine request", "-p", "low")

	stdout, _, _ := c.Run("take", "urgent", "-d", "system down", "-p", "high")

	// High priority goes to the head: nobody ahead.
	if !strings.Contains(stdout, "0 ahead of you") {
		t.Errorf("high-priority take should be at the head, got:\n%s", stdout)
	}
}

func TestRejectedTakeLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.Take("kept", "valid ticket")
	c.MustFail("take", "rejected")

	out := c.MustRun("ls")
	cli.AssertContains(t, out, "kept")
	cli.AssertNotContains(t, out, "rejected")
}
