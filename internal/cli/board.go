package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"wq/internal/board"
	"wq/internal/queue"
)

// BoardCmd returns the board command.
func BoardCmd(store *queue.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("board", flag.ContinueOnError),
		Usage: "board",
		Short: "Interactive full-screen queue board",
		Long: `Open the interactive queue board: the ticket being served, the
waiting queue, today's numbers, and a take-a-ticket form. Elapsed
times refresh every 10 seconds. Press q to quit.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execBoard(ctx, o, store)
		},
	}
}

func execBoard(ctx context.Context, o *IO, store *queue.Store) error {
	program := tea.NewProgram(
		board.New(store),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(o.Out()),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	return nil
}
