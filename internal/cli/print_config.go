package cli

import (
	"context"

	"wq/internal/queue"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg queue.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Print the effective configuration",
		Long:  "Print the effective configuration and which config files produced it.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			execPrintConfig(o, cfg)

			return nil
		},
	}
}

func execPrintConfig(o *IO, cfg queue.Config) {
	o.Printf("store: %s\n", cfg.StoreAbs)
	o.Printf("cwd:   %s\n", cfg.EffectiveCwd)

	if cfg.Sources.Global != "" {
		o.Printf("global config:  %s\n", cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		o.Printf("project config: %s\n", cfg.Sources.Project)
	}
}
