package cli

import (
	"context"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// NextCmd returns the next command.
func NextCmd(store *queue.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("next", flag.ContinueOnError),
		Usage: "next",
		Short: "Call the next waiting ticket",
		Long: `Call the head of the waiting queue: highest priority first,
earliest arrival within a priority.

Does nothing if a ticket is already in progress or the queue is empty;
neither case is an error.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execNext(o, store)
		},
	}
}

func execNext(o *IO, store *queue.Store) error {
	if current, busy := store.InProgress(); busy {
		o.Printf("nothing to do: %s (%s) is already in progress\n", current.Number, current.Name)

		return nil
	}

	ticket, ok := store.CallNext()
	if !ok {
		o.Println("nothing to do: the waiting queue is empty")

		return nil
	}

	o.Printf("now serving %s  %s [%s]\n", ticket.Number, ticket.Name, ticket.Priority)
	o.Println(ticket.Description)

	return nil
}
