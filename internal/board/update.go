package board

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wq/internal/queue"
)

// Update handles messages. Each key press triggers at most one store
// mutation, run to completion before the next message is processed.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tickMsg:
		m.now = time.Time(msg)

		return m, tick()

	case tea.KeyMsg:
		switch m.mode {
		case modeTake:
			return m.updateTake(msg)
		case modeDone:
			return m.updateDone(msg)
		default:
			return m.updateQueue(msg)
		}
	}

	return m, nil
}

func (m Model) updateQueue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.store.Waiting())-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "n":
		if ticket, ok := m.store.CallNext(); ok {
			m.notice = fmt.Sprintf("now serving %s %s", ticket.Number, ticket.Name)
			m.selected = 0
		} else {
			m.notice = "nothing to call"
		}

	case "d":
		if _, busy := m.store.InProgress(); busy {
			m.mode = modeDone
			m.resultInput.SetValue("")

			return m, m.resultInput.Focus()
		}

		m.notice = "no ticket in progress"

	case "s":
		if ticket, ok := m.store.Skip(); ok {
			m.notice = fmt.Sprintf("skipped %s %s", ticket.Number, ticket.Name)
		} else {
			m.notice = "no ticket in progress"
		}

	case "b":
		waiting := m.store.Waiting()
		if m.selected < len(waiting) {
			before := waiting[m.selected].Priority

			bumped, err := m.store.BumpPriority(waiting[m.selected].ID)

			switch {
			case err != nil:
				m.notice = err.Error()
			case bumped.Priority != before:
				m.notice = fmt.Sprintf("%s bumped to %s", bumped.Number, bumped.Priority)
			default:
				m.notice = fmt.Sprintf("%s is already %s", bumped.Number, bumped.Priority)
			}
		}

	case "t":
		m.mode = modeTake
		m.takeFocus = 0
		m.nameInput.SetValue("")
		m.descInput.SetValue("")
		m.descInput.Blur()

		return m, m.nameInput.Focus()
	}

	m.clampSelection()

	return m, nil
}

func (m Model) updateTake(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeQueue
		m.nameInput.Blur()
		m.descInput.Blur()

		return m, nil

	case "tab", "shift+tab":
		m.takeFocus = 1 - m.takeFocus

		if m.takeFocus == 0 {
			m.descInput.Blur()

			return m, m.nameInput.Focus()
		}

		m.nameInput.Blur()

		return m, m.descInput.Focus()

	case "enter":
		if m.takeFocus == 0 {
			m.takeFocus = 1
			m.nameInput.Blur()

			return m, m.descInput.Focus()
		}

		ticket, err := m.store.Create(queue.CreateInput{
			Name:        m.nameInput.Value(),
			Description: m.descInput.Value(),
		})
		if err != nil {
			m.notice = err.Error()

			return m, nil
		}

		m.mode = modeQueue
		m.nameInput.Blur()
		m.descInput.Blur()
		m.notice = fmt.Sprintf("ticket %s for %s", ticket.Number, ticket.Name)

		return m, nil
	}

	var cmd tea.Cmd

	if m.takeFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}

	return m, cmd
}

func (m Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeQueue
		m.resultInput.Blur()

		return m, nil

	case "enter":
		if ticket, ok := m.store.Complete(m.resultInput.Value()); ok {
			m.notice = fmt.Sprintf("done %s %s", ticket.Number, ticket.Name)
		}

		m.mode = modeQueue
		m.resultInput.Blur()

		return m, nil
	}

	var cmd tea.Cmd
	m.resultInput, cmd = m.resultInput.Update(msg)

	return m, cmd
}

func (m *Model) clampSelection() {
	if n := len(m.store.Waiting()); m.selected >= n {
		m.selected = n - 1
	}

	if m.selected < 0 {
		m.selected = 0
	}
}
