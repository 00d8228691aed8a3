package cli

import (
	"context"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// TakeCmd returns the take command.
func TakeCmd(store *queue.Store) *Command {
	fs := flag.NewFlagSet("take", flag.ContinueOnError)
	fs.StringP("description", "d", "", "What the applicant needs (required)")
	fs.StringP("priority", "p", queue.PriorityMedium, "Priority: low|medium|high")
	fs.IntP("minutes", "m", queue.DefaultEstimatedMinutes, "Estimated handling minutes")

	return &Command{
		Flags: fs,
		Usage: "take <name>",
		Short: "Take a ticket, prints its number",
		Long: `Take a numbered ticket for a walk-up applicant.

The ticket joins the waiting queue and is called in priority order
(high before medium before low, first-come-first-served within a
priority). Prints the assigned number on success.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execTake(o, store, fs, args)
		},
	}
}

func execTake(o *IO, store *queue.Store, fs *flag.FlagSet, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	description, _ := fs.GetString("description")
	priority, _ := fs.GetString("priority")
	minutes, _ := fs.GetInt("minutes")

	ticket, err := store.Create(queue.CreateInput{
		Name:             name,
		Description:      description,
		Priority:         priority,
		EstimatedMinutes: minutes,
	})
	if err != nil {
		return err
	}

	position := store.PositionAhead(ticket.ID)

	o.Println(ticket.Number)
	o.Printf("%d ahead of you\n", position)

	return nil
}
