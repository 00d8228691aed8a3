package cli

import (
	"context"
	"fmt"
	"time"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// StatsCmd returns the stats command.
func StatsCmd(store *queue.Store) *Command {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.String("date", "", "Calendar day (YYYY-MM-DD, local time), default today")

	return &Command{
		Flags: fs,
		Usage: "stats [--date <day>]",
		Short: "Show per-day service statistics",
		Long: `Show statistics for one local calendar day: tickets completed,
average wait (creation to call) over tickets started that day, and
average handling time (call to done) over tickets completed that day.
Averages are rounded to whole minutes and 0 when no ticket qualifies.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execStats(o, store, fs)
		},
	}
}

func execStats(o *IO, store *queue.Store, fs *flag.FlagSet) error {
	day := time.Now()

	if dateArg, _ := fs.GetString("date"); dateArg != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateArg, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date (want YYYY-MM-DD): %s", dateArg)
		}

		day = parsed
	}

	stats := store.StatsFor(day)

	o.Printf("%s\n", day.Format("2006-01-02"))
	o.Printf("completed:    %d\n", stats.Done)
	o.Printf("avg wait:     %dm\n", stats.AvgWaitMinutes)
	o.Printf("avg handling: %dm\n", stats.AvgHandleMinutes)

	return nil
}
