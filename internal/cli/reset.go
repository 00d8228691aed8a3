package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"wq/internal/queue"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

var errResetDeclined = errors.New("reset aborted")

// ResetCmd returns the reset command.
func ResetCmd(store *queue.Store) *Command {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.Bool("force", false, "Skip the confirmation prompt")

	return &Command{
		Flags: fs,
		Usage: "reset [--force]",
		Short: "Delete every ticket and restart numbering",
		Long: `Delete every ticket. The next ticket taken afterwards gets
number "001" again. Asks for confirmation unless --force is given.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execReset(o, store, fs)
		},
	}
}

func execReset(o *IO, store *queue.Store, fs *flag.FlagSet) error {
	force, _ := fs.GetBool("force")

	if !force {
		confirmed, err := confirmReset(o, store.Len())
		if err != nil {
			return err
		}

		if !confirmed {
			return errResetDeclined
		}
	}

	store.Reset()
	o.Println("queue cleared")

	return nil
}

// confirmReset asks the operator to type "yes". On a terminal it uses a
// readline prompt; piped input falls back to reading one line.
func confirmReset(o *IO, count int) (bool, error) {
	o.Printf("delete all %d tickets? type yes to confirm: ", count)

	if f, ok := o.In().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return promptTerminal()
	}

	return promptReader(o.In())
}

func promptTerminal() (bool, error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	answer, err := line.Prompt("")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, nil
		}

		return false, err
	}

	return isYes(answer), nil
}

func promptReader(in io.Reader) (bool, error) {
	if in == nil {
		return false, nil
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	return isYes(scanner.Text()), nil
}

func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
