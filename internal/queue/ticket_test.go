package queue

import "testing"

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		priority string
		want     int
	}{
		{PriorityHigh, 3},
		{PriorityMedium, 2},
		{PriorityLow, 1},
		{"urgent", 0},
		{"", 0},
	} {
		if got := PriorityRank(tt.priority); got != tt.want {
			t.Errorf("PriorityRank(%q) = %d, want %d", tt.priority, got, tt.want)
		}
	}
}

func TestNextPriority(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		priority string
		want     string
	}{
		{PriorityLow, PriorityMedium},
		{PriorityMedium, PriorityHigh},
		{PriorityHigh, PriorityHigh}, // idempotent ceiling
		{"unknown", "unknown"},
	} {
		if got := NextPriority(tt.priority); got != tt.want {
			t.Errorf("NextPriority(%q) = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		n    int
		want string
	}{
		{1, "001"},
		{42, "042"},
		{999, "999"},
		{1000, "1000"}, // padding is a minimum, not a cap
	} {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		ref  string
		want string
	}{
		{"7", "007"},
		{"007", "007"},
		{" 12 ", "012"},
		{"1000", "1000"},
		{"abc123", "abc123"}, // non-numeric passes through
		{"-3", "-3"},
	} {
		if got := NormalizeNumber(tt.ref); got != tt.want {
			t.Errorf("NormalizeNumber(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestValidity(t *testing.T) {
	t.Parallel()

	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh} {
		if !IsValidPriority(p) {
			t.Errorf("IsValidPriority(%q) = false", p)
		}
	}

	if IsValidPriority("critical") {
		t.Error("IsValidPriority(critical) = true")
	}

	for _, s := range []string{StatusWaiting, StatusInProgress, StatusDone, StatusSkipped} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}

	if IsValidStatus("open") {
		t.Error("IsValidStatus(open) = true")
	}
}
