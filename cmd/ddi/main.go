package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/ddi/internal/app"
	"github.com/alexanderramin/ddi/internal/cli"
	"github.com/alexanderramin/ddi/internal/cli/formatter"
	"github.com/alexanderramin/ddi/internal/config"
	"github.com/alexanderramin/ddi/internal/device"
	"github.com/alexanderramin/ddi/internal/gate"
	"github.com/alexanderramin/ddi/internal/imaging"
	"github.com/alexanderramin/ddi/internal/observe"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	formatter.SetColor(cfg.UseColor(stdoutTTY))

	var observer observe.Observer = observe.NoopObserver{}
	if cfg.LogCalls {
		observer = observe.NewLogObserver(os.Stderr)
	}

	resolver := device.NewResolver(device.NewLsblkLister(cfg.LsblkPath, cfg.NotBlockDeviceExit), observer)

	a := &cli.App{
		Runner: &app.Runner{
			Gate:    gate.New(resolver, os.Stdin, os.Stdout, observer),
			Imaging: imaging.NewCommandRunner(cfg.DDPath, observer),
			Out:     os.Stdout,
		},
	}

	rootCmd := cli.NewRootCmd(a)
	return rootCmd.ExecuteContext(context.Background())
}
