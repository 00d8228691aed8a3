package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wq/internal/queue"

	"github.com/mattn/go-runewidth"
	flag "github.com/spf13/pflag"
)

// LsCmd returns the ls command.
func LsCmd(store *queue.Store) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.Bool("all", false, "Include in-progress, done and skipped tickets")

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List the waiting queue in calling order",
		Long: `List the waiting queue in calling order: priority descending,
then arrival time. With --all, every ticket is shown grouped by
status (in progress, waiting, then finished).`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execLs(o, store, fs)
		},
	}
}

func execLs(o *IO, store *queue.Store, fs *flag.FlagSet) error {
	all, _ := fs.GetBool("all")
	now := time.Now()

	if current, busy := store.InProgress(); busy {
		o.Println(ticketLine(&current, now))
	}

	for _, t := range store.Waiting() {
		o.Println(ticketLine(&t, now))
	}

	if !all {
		return nil
	}

	for _, t := range store.All() {
		if t.Terminal() {
			o.Println(ticketLine(&t, now))
		}
	}

	return nil
}

// nameColumn is the padded display width of the name column. Names are
// free text and often CJK, so padding goes by rune width, not length.
const nameColumn = 16

func ticketLine(t *queue.Ticket, now time.Time) string {
	var b strings.Builder

	b.WriteString(t.Number)
	b.WriteString("  ")
	b.WriteString(fmt.Sprintf("%-12s", "["+t.Status+"]"))
	b.WriteString(fmt.Sprintf("%-8s", t.Priority))
	b.WriteString(runewidth.FillRight(t.Name, nameColumn))
	b.WriteString(fmt.Sprintf("  est %dm", t.EstimatedMinutes))

	switch t.Status {
	case queue.StatusWaiting:
		b.WriteString("  waited " + fmtDuration(t.WaitedSince(now)))
	case queue.StatusInProgress:
		if t.StartedAt != nil {
			b.WriteString("  serving for " + fmtDuration(now.Sub(*t.StartedAt)))
		}
	case queue.StatusDone:
		if t.Result != "" {
			b.WriteString("  " + t.Result)
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// fmtDuration renders a duration as "45s", "12m" or "1h05m".
func fmtDuration(d time.Duration) string {
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
