package queue

import (
	"slices"
	"strings"
)

// Waiting returns the waiting queue in calling order: priority rank
// descending, ties broken by creation time ascending (earlier first).
// The sort is stable; the result is a copy.
//
// The ordering is recomputed from the ticket set on every call. The
// store is small and a cached ordering is one more thing to invalidate.
func (s *Store) Waiting() []Ticket {
	var waiting []Ticket

	for _, t := range s.tickets {
		if t.Status == StatusWaiting {
			waiting = append(waiting, t)
		}
	}

	slices.SortStableFunc(waiting, func(a, b Ticket) int {
		if ra, rb := PriorityRank(a.Priority), PriorityRank(b.Priority); ra != rb {
			return rb - ra
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return waiting
}

// InProgress returns the ticket currently being handled.
// The lifecycle operations guarantee there is at most one.
func (s *Store) InProgress() (Ticket, bool) {
	for _, t := range s.tickets {
		if t.Status == StatusInProgress {
			return t, true
		}
	}

	return Ticket{}, false
}

// NextNumber returns the display number the next created ticket will get:
// max numeric value of all existing numbers plus one, zero-padded.
// Numbers are derived, never stored as a counter, so they survive
// snapshot edits and restart at "001" after a reset.
func (s *Store) NextNumber() string {
	maxN := 0

	for _, t := range s.tickets {
		if n := numberValue(t.Number); n > maxN {
			maxN = n
		}
	}

	return FormatNumber(maxN + 1)
}

// PositionAhead returns how many tickets will be handled before the given
// one: for a waiting ticket its index in the waiting queue, plus one if a
// ticket is currently in progress. The in-progress ticket itself is at 0,
// and the value is 0 (not meaningful) for terminal tickets.
func (s *Store) PositionAhead(id string) int {
	ticket, ok := s.byID(id)
	if !ok || ticket.Status != StatusWaiting {
		return 0
	}

	ahead := 0
	if _, busy := s.InProgress(); busy {
		ahead = 1
	}

	for _, w := range s.Waiting() {
		if w.ID == id {
			return ahead
		}

		ahead++
	}

	return 0
}

// Find resolves a user-supplied reference to a ticket. A numeric
// reference matches the display number ("7" matches "007"); anything else
// matches a unique ID prefix. Number matches win over ID matches.
func (s *Store) Find(ref string) (Ticket, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Ticket{}, ErrTicketRefRequired
	}

	number := NormalizeNumber(ref)
	for _, t := range s.tickets {
		if t.Number == number {
			return t, nil
		}
	}

	var matches []Ticket

	for _, t := range s.tickets {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return Ticket{}, ErrTicketNotFound
	case 1:
		return matches[0], nil
	default:
		return Ticket{}, ErrAmbiguousTicketRef
	}
}

// byID returns a copy of the ticket with the given ID.
func (s *Store) byID(id string) (Ticket, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tickets[i], true
	}

	return Ticket{}, false
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tickets, func(t Ticket) bool { return t.ID == id })
}
