package cli

import (
	"context"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// DoneCmd returns the done command.
func DoneCmd(store *queue.Store) *Command {
	fs := flag.NewFlagSet("done", flag.ContinueOnError)
	fs.StringP("result", "r", "", "Outcome note stored on the ticket")

	return &Command{
		Flags: fs,
		Usage: "done [-r <result>]",
		Short: "Complete the in-progress ticket",
		Long: `Complete the ticket currently in progress and record the outcome.

The result note may be empty. Does nothing if no ticket is in
progress; that is not an error.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execDone(o, store, fs)
		},
	}
}

func execDone(o *IO, store *queue.Store, fs *flag.FlagSet) error {
	result, _ := fs.GetString("result")

	ticket, ok := store.Complete(result)
	if !ok {
		o.Println("nothing to do: no ticket is in progress")

		return nil
	}

	o.Printf("done %s  %s\n", ticket.Number, ticket.Name)

	return nil
}
