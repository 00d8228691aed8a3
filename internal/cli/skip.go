package cli

import (
	"context"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// SkipCmd returns the skip command.
func SkipCmd(store *queue.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("skip", flag.ContinueOnError),
		Usage: "skip",
		Short: "Skip the in-progress ticket",
		Long: `Skip the ticket currently in progress, for example when the
applicant walked away. Skipped tickets are terminal and do not
re-enter the waiting queue.

Does nothing if no ticket is in progress; that is not an error.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execSkip(o, store)
		},
	}
}

func execSkip(o *IO, store *queue.Store) error {
	ticket, ok := store.Skip()
	if !ok {
		o.Println("nothing to do: no ticket is in progress")

		return nil
	}

	o.Printf("skipped %s  %s\n", ticket.Number, ticket.Name)

	return nil
}
