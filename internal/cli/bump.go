package cli

import (
	"context"
	"fmt"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// BumpCmd returns the bump command.
func BumpCmd(store *queue.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("bump", flag.ContinueOnError),
		Usage: "bump <number|id>",
		Short: "Raise a ticket's priority one step",
		Long: `Raise a ticket's priority one step toward high
(low -> medium -> high). Bumping a high ticket changes nothing.
Priorities never move downward.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execBump(o, store, args)
		},
	}
}

func execBump(o *IO, store *queue.Store, args []string) error {
	if len(args) == 0 {
		return queue.ErrTicketRefRequired
	}

	ticket, err := store.Find(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[0])
	}

	before := ticket.Priority

	bumped, err := store.BumpPriority(ticket.ID)
	if err != nil {
		return err
	}

	if bumped.Priority == before {
		o.Printf("%s is already %s\n", bumped.Number, bumped.Priority)

		return nil
	}

	o.Printf("%s  %s -> %s\n", bumped.Number, before, bumped.Priority)

	return nil
}
