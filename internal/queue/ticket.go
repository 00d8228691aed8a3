// Package queue implements the walk-up ticket queue: the ticket record,
// the snapshot store, the waiting-queue projection and the lifecycle
// operations that move tickets through it.
package queue

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Ticket represents one walk-up service request.
//
// Field names in the JSON tags are the snapshot wire format; a snapshot
// written by one version must reload field-for-field identical.
type Ticket struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	CreatedAt        time.Time  `json:"createdAt"`
	StartedAt        *time.Time `json:"startedAt,omitempty"`
	DoneAt           *time.Time `json:"doneAt,omitempty"`
	Result           string     `json:"result,omitempty"`
}

// validPriorities are the allowed priorities, lowest first.
var validPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// validStatuses are the allowed lifecycle statuses.
var validStatuses = []string{StatusWaiting, StatusInProgress, StatusDone, StatusSkipped}

// DefaultEstimatedMinutes is used when the applicant gives no estimate.
const DefaultEstimatedMinutes = 15

// numberWidth is the minimum zero-padded width of display numbers.
// Numbers past 999 widen naturally.
const numberWidth = 3

// IsValidPriority checks if the priority is one of low, medium, high.
func IsValidPriority(priority string) bool {
	return slices.Contains(validPriorities, priority)
}

// IsValidStatus checks if the status is a known lifecycle status.
func IsValidStatus(status string) bool {
	return slices.Contains(validStatuses, status)
}

// PriorityRank returns the ordinal weight used to sort the waiting queue:
// high=3, medium=2, low=1. Unknown priorities rank 0 (sorted last).
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// NextPriority returns the priority one step closer to high.
// High stays high; priorities never move downward.
func NextPriority(priority string) string {
	switch priority {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return priority
	}
}

// Terminal reports whether the ticket is in a terminal state.
// Terminal tickets are never mutated again.
func (t *Ticket) Terminal() bool {
	return t.Status == StatusDone || t.Status == StatusSkipped
}

// WaitedSince returns how long the ticket has been waiting as of now.
func (t *Ticket) WaitedSince(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// FormatNumber renders a sequence value as a display number, zero-padded
// to three digits ("1" -> "001").
func FormatNumber(n int) string {
	return fmt.Sprintf("%0*d", numberWidth, n)
}

// numberValue parses a display number back to its numeric value.
// Unparseable numbers count as 0 so a damaged record cannot stall the
// sequence.
func numberValue(number string) int {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// NormalizeNumber canonicalizes user input like "7" or " 007 " to the
// stored display form "007". Returns the input unchanged if it is not
// numeric.
func NormalizeNumber(ref string) string {
	trimmed := strings.TrimSpace(ref)

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return trimmed
	}

	return FormatNumber(n)
}
