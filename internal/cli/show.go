package cli

import (
	"context"
	"fmt"
	"time"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// ShowCmd returns the show command.
func ShowCmd(store *queue.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show <number|id>",
		Short: "Show ticket details",
		Long: `Display the full record of a ticket, addressed by display number
("7" or "007") or a unique ID prefix. Waiting tickets also show how
many tickets are ahead of them.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execShow(o, store, args)
		},
	}
}

func execShow(o *IO, store *queue.Store, args []string) error {
	if len(args) == 0 {
		return queue.ErrTicketRefRequired
	}

	ticket, err := store.Find(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[0])
	}

	o.Printf("number:      %s\n", ticket.Number)
	o.Printf("id:          %s\n", ticket.ID)
	o.Printf("name:        %s\n", ticket.Name)
	o.Printf("description: %s\n", ticket.Description)
	o.Printf("priority:    %s\n", ticket.Priority)
	o.Printf("status:      %s\n", ticket.Status)
	o.Printf("estimate:    %dm\n", ticket.EstimatedMinutes)
	o.Printf("created:     %s\n", ticket.CreatedAt.Local().Format(time.RFC3339))

	if ticket.StartedAt != nil {
		o.Printf("started:     %s\n", ticket.StartedAt.Local().Format(time.RFC3339))
	}

	if ticket.DoneAt != nil {
		o.Printf("done:        %s\n", ticket.DoneAt.Local().Format(time.RFC3339))

		if ticket.Result != "" {
			o.Printf("result:      %s\n", ticket.Result)
		}
	}

	switch ticket.Status {
	case queue.StatusWaiting:
		o.Printf("ahead:       %d\n", store.PositionAhead(ticket.ID))
	case queue.StatusSkipped:
		o.Println("skipped tickets stay closed; take a new number to re-queue")
	}

	return nil
}
