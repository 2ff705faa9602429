// Package cli is the textual surface over the block model: it reads raw
// user input, invokes the calculator and renders results. Model error
// kinds pass through its error chains unchanged.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	ucli "github.com/urfave/cli/v3"

	"github.com/ak7sky/cidr-calc/internal/config"
	"github.com/ak7sky/cidr-calc/internal/core"
	"github.com/ak7sky/cidr-calc/internal/core/model"
	"github.com/ak7sky/cidr-calc/internal/core/service"
	"github.com/ak7sky/cidr-calc/internal/logger"
)

// App assembles the command tree. Out receives command results, ErrOut
// receives logs; NewCalc is a seam for tests to substitute the calculator.
type App struct {
	Out     io.Writer
	ErrOut  io.Writer
	NewCalc func(cfg config.Config) core.NetCalculator
}

func (app *App) Command() *ucli.Command {
	root := &ucli.Command{
		Name:  "cidr-calc",
		Usage: "IPv4 CIDR block calculator",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
			&ucli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides config)",
			},
		},
		// Exit code mapping is the caller's job; the framework must not
		// os.Exit under tests.
		ExitErrHandler: func(_ context.Context, _ *ucli.Command, _ error) {},
		Commands: []*ucli.Command{
			app.describeCommand(),
			app.containsCommand(),
			app.subnetsCommand(),
			app.nthCommand(),
			app.adjacentCommand("next", "block of equal size immediately above"),
			app.adjacentCommand("prev", "block of equal size immediately below"),
		},
	}
	root.Writer = app.Out
	root.ErrWriter = app.ErrOut
	return root
}

// setup loads config, applies flag overrides and builds the calculator.
func (app *App) setup(cmd *ucli.Command) (core.NetCalculator, config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, config.Config{}, err
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if app.NewCalc != nil {
		return app.NewCalc(cfg), cfg, nil
	}
	return service.New(logger.NewLogger(cfg.LogLevel, app.ErrOut)), cfg, nil
}

func (app *App) describeCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "describe",
		Aliases:   []string{"d"},
		Usage:     "normalize a block and print its attributes",
		ArgsUsage: "<cidr> | <address> <mask>",
		Action: func(_ context.Context, cmd *ucli.Command) error {
			calc, _, err := app.setup(cmd)
			if err != nil {
				return err
			}
			block, err := app.describeArgs(calc, cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Network:   %s\n", block)
			fmt.Fprintf(app.Out, "Netmask:   %s\n", block.Prefix().MaskAddr())
			fmt.Fprintf(app.Out, "Hostmask:  %s\n", block.Prefix().HostmaskAddr())
			fmt.Fprintf(app.Out, "Broadcast: %s\n", block.Broadcast())
			fmt.Fprintf(app.Out, "Size:      %d\n", block.Size())
			return nil
		},
	}
}

func (app *App) describeArgs(calc core.NetCalculator, args []string) (model.Block, error) {
	switch len(args) {
	case 1:
		return calc.Describe(args[0])
	case 2:
		return calc.DescribeMasked(args[0], args[1])
	default:
		return model.Block{}, fmt.Errorf("describe takes a cidr or an address and a mask")
	}
}

func (app *App) containsCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "contains",
		Usage:     "position of an address inside a block",
		ArgsUsage: "<cidr> <address>",
		Action: func(_ context.Context, cmd *ucli.Command) error {
			calc, _, err := app.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("contains takes a cidr and an address")
			}
			cidr, addr := cmd.Args().Get(0), cmd.Args().Get(1)
			n, ok, err := calc.Contains(cidr, addr)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(app.Out, "%s is not in %s\n", addr, cidr)
				return ucli.Exit("", 1)
			}
			fmt.Fprintf(app.Out, "%s is #%d in %s\n", addr, n, cidr)
			return nil
		},
	}
}

func (app *App) subnetsCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "subnets",
		Aliases:   []string{"ls"},
		Usage:     "list the sub-blocks or member addresses of a block",
		ArgsUsage: "<cidr>",
		Flags:     splitFlags(),
		Action: func(_ context.Context, cmd *ucli.Command) error {
			calc, cfg, err := app.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("subnets takes a cidr")
			}
			cidr := cmd.Args().Get(0)
			subBits, limit := splitArgs(cmd, cfg)
			if cmd.Bool("addrs") {
				addrs, err := calc.Addrs(cidr, subBits, limit)
				if err != nil {
					return err
				}
				for _, addr := range addrs {
					fmt.Fprintln(app.Out, addr)
				}
				return nil
			}
			blocks, err := calc.Subnets(cidr, subBits, limit)
			if err != nil {
				return err
			}
			for _, block := range blocks {
				fmt.Fprintln(app.Out, block)
			}
			return nil
		},
	}
}

func (app *App) nthCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "nth",
		Usage:     "sub-blocks or addresses at the given positions, in the order given",
		ArgsUsage: "<cidr> <n|n-m> [<n|n-m> ...]",
		Flags:     splitFlags(),
		Action: func(_ context.Context, cmd *ucli.Command) error {
			calc, cfg, err := app.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Args().Len() < 2 {
				return fmt.Errorf("nth takes a cidr and at least one position")
			}
			cidr := cmd.Args().Get(0)
			ns, err := parseIndices(cmd.Args().Slice()[1:])
			if err != nil {
				return err
			}
			subBits, _ := splitArgs(cmd, cfg)
			if cmd.Bool("addrs") {
				addrs, err := calc.NthAddrs(cidr, ns, subBits)
				if err != nil {
					return err
				}
				for _, addr := range addrs {
					fmt.Fprintln(app.Out, addr)
				}
				return nil
			}
			blocks, err := calc.NthSubnets(cidr, ns, subBits)
			if err != nil {
				return err
			}
			for _, block := range blocks {
				fmt.Fprintln(app.Out, block)
			}
			return nil
		},
	}
}

func (app *App) adjacentCommand(name, usage string) *ucli.Command {
	return &ucli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<cidr>",
		Action: func(_ context.Context, cmd *ucli.Command) error {
			calc, _, err := app.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%s takes a cidr", name)
			}
			step := calc.Next
			if name == "prev" {
				step = calc.Prev
			}
			block, err := step(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, block)
			return nil
		},
	}
}

func splitFlags() []ucli.Flag {
	return []ucli.Flag{
		&ucli.IntFlag{
			Name:    "split",
			Aliases: []string{"s"},
			Usage:   "sub-block prefix length (default: config default_split_bits)",
		},
		&ucli.BoolFlag{
			Name:    "addrs",
			Aliases: []string{"a"},
			Usage:   "print base addresses instead of blocks",
		},
		&ucli.IntFlag{
			Name:    "limit",
			Aliases: []string{"l"},
			Usage:   "cap listing output, 0 for no cap (default: config list_limit)",
		},
	}
}

func splitArgs(cmd *ucli.Command, cfg config.Config) (subBits, limit int) {
	subBits, limit = cfg.DefaultSplitBits, cfg.ListLimit
	if cmd.IsSet("split") {
		subBits = cmd.Int("split")
	}
	if cmd.IsSet("limit") {
		limit = cmd.Int("limit")
	}
	return subBits, limit
}

// parseIndices reads position arguments: either a single index or an
// inclusive "n-m" range. Order is preserved and nothing is de-duplicated.
func parseIndices(args []string) ([]uint64, error) {
	ns := make([]uint64, 0, len(args))
	for _, arg := range args {
		lo, hi, found := strings.Cut(arg, "-")
		if !found {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("position %q: %w", arg, err)
			}
			ns = append(ns, n)
			continue
		}
		from, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("position range %q: %w", arg, err)
		}
		to, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("position range %q: %w", arg, err)
		}
		if to < from {
			return nil, fmt.Errorf("position range %q: end before start", arg)
		}
		for n := from; n <= to; n++ {
			ns = append(ns, n)
		}
	}
	return ns, nil
}
