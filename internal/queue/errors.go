package queue

import "errors"

// Status constants.
const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusSkipped    = "skipped"
)

// Priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Error variables for queue operations.
var (
	ErrConfigFileNotFound  = errors.New("config file not found")
	ErrConfigFileRead      = errors.New("cannot read config file")
	ErrConfigInvalid       = errors.New("invalid config file")
	ErrStorePathEmpty      = errors.New("store path cannot be empty")
	ErrNameRequired        = errors.New("name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidPriority     = errors.New("invalid priority (must be low|medium|high)")
	ErrInvalidMinutes      = errors.New("estimated minutes must be at least 1")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketRefRequired   = errors.New("ticket number or ID is required")
	ErrAmbiguousTicketRef  = errors.New("ticket reference matches more than one ticket")
)
