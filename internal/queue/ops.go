package queue

import (
	"strings"

	"github.com/google/uuid"
)

// CreateInput holds the applicant-supplied fields for a new ticket.
type CreateInput struct {
	Name             string
	Description      string
	Priority         string // empty means medium
	EstimatedMinutes int    // zero means DefaultEstimatedMinutes
}

// Create validates the input, appends a new waiting ticket and persists.
// The ticket gets the next sequential display number and the current time
// as its creation timestamp.
func (s *Store) Create(input CreateInput) (Ticket, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Ticket{}, ErrNameRequired
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return Ticket{}, ErrDescriptionRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !IsValidPriority(priority) {
		return Ticket{}, ErrInvalidPriority
	}

	minutes := input.EstimatedMinutes
	if minutes == 0 {
		minutes = DefaultEstimatedMinutes
	}

	if minutes < 1 {
		return Ticket{}, ErrInvalidMinutes
	}

	ticket := Ticket{
		ID:               uuid.NewString(),
		Number:           s.NextNumber(),
		Name:             name,
		Description:      description,
		Priority:         priority,
		Status:           StatusWaiting,
		EstimatedMinutes: minutes,
		CreatedAt:        s.now(),
	}

	s.tickets = append(s.tickets, ticket)
	s.persist()

	return ticket, nil
}

// CallNext moves the head of the waiting queue to in_progress and stamps
// its start time. It is a no-op (ok=false) when a ticket is already in
// progress or the waiting queue is empty, preserving the at-most-one
// in-progress invariant.
func (s *Store) CallNext() (Ticket, bool) {
	if _, busy := s.InProgress(); busy {
		return Ticket{}, false
	}

	waiting := s.Waiting()
	if len(waiting) == 0 {
		return Ticket{}, false
	}

	i := s.indexOf(waiting[0].ID)

	started := s.now()
	s.tickets[i].Status = StatusInProgress
	s.tickets[i].StartedAt = &started
	s.persist()

	return s.tickets[i], true
}

// Complete finishes the in-progress ticket: status done, done timestamp
// and result text stamped exactly once. The result may be empty. No-op
// (ok=false) when nothing is in progress.
func (s *Store) Complete(result string) (Ticket, bool) {
	current, busy := s.InProgress()
	if !busy {
		return Ticket{}, false
	}

	i := s.indexOf(current.ID)

	done := s.now()
	s.tickets[i].Status = StatusDone
	s.tickets[i].DoneAt = &done
	s.tickets[i].Result = result
	s.persist()

	return s.tickets[i], true
}

// Skip abandons the in-progress ticket. Skipped is terminal: the ticket
// does not re-enter the waiting queue. No-op (ok=false) when nothing is
// in progress.
func (s *Store) Skip() (Ticket, bool) {
	current, busy := s.InProgress()
	if !busy {
		return Ticket{}, false
	}

	i := s.indexOf(current.ID)

	s.tickets[i].Status = StatusSkipped
	s.persist()

	return s.tickets[i], true
}

// BumpPriority advances a ticket's priority one step toward high.
// Bumping a high ticket is an idempotent no-op; the only error is an
// unknown ID.
func (s *Store) BumpPriority(id string) (Ticket, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Ticket{}, ErrTicketNotFound
	}

	next := NextPriority(s.tickets[i].Priority)
	if next == s.tickets[i].Priority {
		return s.tickets[i], nil
	}

	s.tickets[i].Priority = next
	s.persist()

	return s.tickets[i], nil
}

// Reset clears the entire store and persists the empty snapshot.
// Display numbers derive from the (now empty) ticket set, so the
// sequence restarts at "001". Confirmation is the caller's concern.
func (s *Store) Reset() {
	s.tickets = nil
	s.persist()
}
