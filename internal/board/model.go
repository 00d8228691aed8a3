// Package board renders the walk-up queue as a full-screen terminal
// board: the in-progress ticket on top, the waiting queue below, and a
// take-a-ticket form. It is a pure renderer; every mutation goes through
// the queue package's lifecycle operations.
package board

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wq/internal/queue"
)

// mode is the board's input mode.
type mode int

const (
	modeQueue mode = iota // browsing the queue, single-key commands
	modeTake              // take-a-ticket form (name + description)
	modeDone              // result prompt before completing
)

// clockInterval is how often the displayed clock and elapsed durations
// refresh. The tick never mutates the store.
const clockInterval = 10 * time.Second

// tickMsg carries the refreshed wall-clock time.
type tickMsg time.Time

// Model is the board's bubbletea model.
type Model struct {
	store *queue.Store

	now      time.Time
	selected int
	mode     mode
	notice   string

	// take form
	nameInput textinput.Model
	descInput textinput.Model
	takeFocus int

	// done prompt
	resultInput textinput.Model

	width  int
	height int
}

// New creates a board over the given store.
func New(store *queue.Store) Model {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64

	desc := textinput.New()
	desc.Placeholder = "what do you need?"
	desc.CharLimit = 140

	result := textinput.New()
	result.Placeholder = "result (optional)"
	result.CharLimit = 140

	return Model{
		store:       store,
		now:         time.Now(),
		nameInput:   name,
		descInput:   desc,
		resultInput: result,
	}
}

// Init schedules the first clock tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
