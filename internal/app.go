package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	ucli "github.com/urfave/cli/v3"

	"github.com/ak7sky/cidr-calc/internal/cli"
)

// Run wires the CLI surface and executes one command. The context is
// cancelled on SIGINT/SIGTERM so a long listing stops mid-stream.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{Out: os.Stdout, ErrOut: os.Stderr}
	if err := app.Command().Run(ctx, args); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		var coder ucli.ExitCoder
		if errors.As(err, &coder) {
			return coder.ExitCode()
		}
		return 1
	}
	return 0
}
