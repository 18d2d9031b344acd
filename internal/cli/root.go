package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Runner executes one ddi invocation with the raw operands.
type Runner interface {
	Run(ctx context.Context, raw []string) error
}

// App holds the collaborators used by the root command.
type App struct {
	Runner Runner
}

// NewRootCmd creates the top-level "ddi" command. Flag parsing is disabled
// so that every token, including --help and --version, reaches dd.
func NewRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ddi [operand=value ...]",
		Short: "A safer dd",
		Long: `ddi wraps dd. When an output operand (of=...) names a block device,
ddi shows the device's model, size and partitions and asks for
confirmation before dd runs. Image files and other non-device targets
are written without a prompt.

Examples:
  ddi if=disk.img of=/dev/sdb bs=4M status=progress
  ddi if=/dev/sda of=/tmp/sda.img
  ddi --help`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Runner.Run(cmd.Context(), args)
		},
	}
}
