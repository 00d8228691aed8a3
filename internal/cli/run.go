package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"wq/internal/queue"
)

const minArgs = 2

// globalFlags are the flags recognized before the command name.
type globalFlags struct {
	workDir    string
	configPath string
	storePath  string
	remaining  []string
}

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(stdin, out, errOut)

	if len(args) < minArgs {
		printUsage(o)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(o)

		return 0
	}

	name := flags.remaining[0]
	if name == "-h" || name == "--help" {
		printUsage(o)

		return 0
	}

	cfg, err := queue.LoadConfig(queue.LoadConfigInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		StoreOverride:   flags.storePath,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	store, warning := queue.Open(cfg.StoreAbs)
	if warning != "" {
		o.Warn(warning)
	}

	cmd := findCommand(commands(cfg, store), name)
	if cmd == nil {
		o.ErrPrintln("error: unknown command:", name)
		printUsage(o)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			<-sigCh
			cancel()
		}()
	}

	code := cmd.Run(ctx, o, flags.remaining[1:])
	o.Finish()

	return code
}

// commands returns the full command set in help order.
func commands(cfg queue.Config, store *queue.Store) []*Command {
	return []*Command{
		TakeCmd(store),
		NextCmd(store),
		DoneCmd(store),
		SkipCmd(store),
		BumpCmd(store),
		LsCmd(store),
		ShowCmd(store),
		StatsCmd(store),
		BoardCmd(store),
		ResetCmd(store),
		PrintConfigCmd(cfg),
	}
}

func findCommand(cmds []*Command, name string) *Command {
	for _, c := range cmds {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// parseGlobalFlags extracts flags that appear before the command name.
// Supports --flag value and --flag=value forms.
func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	i := 0
	for i < len(args) {
		arg := args[i]

		if !strings.HasPrefix(arg, "-") || arg == "-h" || arg == "--help" {
			break
		}

		name, value, hasValue := strings.Cut(arg, "=")

		consume := func(target *string) error {
			if hasValue {
				*target = value
				i++

				return nil
			}

			if i+1 >= len(args) {
				return fmt.Errorf("flag requires an argument: %s", name)
			}

			*target = args[i+1]
			i += 2

			return nil
		}

		var err error

		switch name {
		case "-C", "--cwd":
			err = consume(&flags.workDir)
		case "-c", "--config":
			err = consume(&flags.configPath)
		case "--store":
			err = consume(&flags.storePath)
		default:
			return globalFlags{}, fmt.Errorf("unknown global flag: %s", name)
		}

		if err != nil {
			return globalFlags{}, err
		}
	}

	flags.remaining = args[i:]

	return flags, nil
}

func printUsage(o *IO) {
	o.Println("wq - walk-up queue desk")
	o.Println()
	o.Println("Usage: wq [global flags] <command> [args]")
	o.Println()
	o.Println("Global flags:")
	o.Println("  -C, --cwd <dir>        Run as if started in <dir>")
	o.Println("  -c, --config <file>    Explicit config file")
	o.Println("      --store <file>     Snapshot file (overrides config)")
	o.Println()
	o.Println("Commands:")

	for _, c := range commands(queue.Config{}, nil) {
		o.Println(c.HelpLine())
	}

	o.Println()
	o.Println("Run 'wq <command> --help' for command details.")
}
