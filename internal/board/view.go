package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the board. Everything shown is derived from the store on
// each render; the only cached value is the 10-second clock.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewServing())
	b.WriteString("\n")
	b.WriteString(m.viewWaiting())
	b.WriteString("\n")

	switch m.mode {
	case modeTake:
		b.WriteString(m.viewTakeForm())
	case modeDone:
		b.WriteString(m.viewDonePrompt())
	default:
		b.WriteString(m.viewFooter())
	}

	return b.String()
}

func (m Model) viewHeader() string {
	title := styleTitle.Render("walk-up queue")
	clock := styleMuted.Render(m.now.Format("15:04"))
	stats := m.store.StatsFor(m.now)
	day := styleMuted.Render(fmt.Sprintf("done today %d · avg wait %dm · avg handling %dm",
		stats.Done, stats.AvgWaitMinutes, stats.AvgHandleMinutes))

	return title + "  " + clock + "  " + day + "\n"
}

func (m Model) viewServing() string {
	current, busy := m.store.InProgress()
	if !busy {
		return styleIdleCard.Render("nobody being served - press n to call the next ticket") + "\n"
	}

	elapsed := ""
	if current.StartedAt != nil {
		elapsed = styleMuted.Render("  " + shortDuration(m.now.Sub(*current.StartedAt)))
	}

	line := fmt.Sprintf("%s  %s%s\n%s",
		styleTitle.Render(current.Number),
		current.Name,
		elapsed,
		current.Description,
	)

	return styleServingCard.Render(line) + "\n"
}

func (m Model) viewWaiting() string {
	waiting := m.store.Waiting()
	if len(waiting) == 0 {
		return styleMuted.Render("the waiting queue is empty") + "\n"
	}

	var b strings.Builder

	b.WriteString(styleHeader.Render(fmt.Sprintf("waiting (%d)", len(waiting))))
	b.WriteString("\n")

	for i, t := range waiting {
		cursor := "  "
		if i == m.selected && m.mode == modeQueue {
			cursor = styleSelected.Render("> ")
		}

		line := fmt.Sprintf("%s %s %s est %dm, waited %s",
			t.Number,
			priorityStyle(t.Priority).Render(runewidth.FillRight(t.Priority, 7)),
			runewidth.FillRight(t.Name, 16),
			t.EstimatedMinutes,
			shortDuration(t.WaitedSince(m.now)),
		)

		if i == m.selected && m.mode == modeQueue {
			line = styleSelected.Render(line)
		}

		b.WriteString(cursor + line + "\n")
	}

	return b.String()
}

func (m Model) viewTakeForm() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		styleHeader.Render("take a ticket (next: "+m.store.NextNumber()+")"),
		"name:        "+m.nameInput.View(),
		"description: "+m.descInput.View(),
		styleMuted.Render("enter to submit, tab to switch, esc to cancel"),
	)

	return stylePrompt.Render(form) + "\n"
}

func (m Model) viewDonePrompt() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		styleHeader.Render("complete ticket"),
		"result: "+m.resultInput.View(),
		styleMuted.Render("enter to complete, esc to cancel"),
	)

	return stylePrompt.Render(form) + "\n"
}

func (m Model) viewFooter() string {
	help := styleMuted.Render("n call next · d done · s skip · b bump · t take · j/k select · q quit")
	if m.notice == "" {
		return help
	}

	return styleNotice.Render(m.notice) + "\n" + help
}

// shortDuration renders an elapsed duration like the board's wall clock:
// "40s", "12m", "1h05m".
func shortDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}

	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
