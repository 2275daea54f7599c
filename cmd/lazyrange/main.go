// Package main is the lazyrange command line tool.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/charmingruby/lazyrange/internal/config"
	"github.com/charmingruby/lazyrange/internal/logging"
	"github.com/charmingruby/lazyrange/internal/render"
	"github.com/charmingruby/lazyrange/numrange"
	"github.com/charmingruby/lazyrange/seq"
	"github.com/charmingruby/lazyrange/transform"
)

var version = "(devel)"

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp(ctx).Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}

func newApp(ctx context.Context) *cli.App {
	var verbose bool
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		Destination: &verbose,
	}

	outputTypes := []string{}
	for _, t := range config.OutputTypes {
		outputTypes = append(outputTypes, string(t))
	}

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML file with default settings",
		EnvVars: []string{"LAZYRANGE_CONFIG"},
	}
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format, one of " + strings.Join(outputTypes, ", "),
		EnvVars: []string{"LAZYRANGE_OUTPUT"},
	}
	lowerFlag := &cli.Float64Flag{
		Name:    "lower",
		Aliases: []string{"l"},
		Usage:   "lower bound of the range",
		EnvVars: []string{"LAZYRANGE_LOWER"},
	}
	upperFlag := &cli.Float64Flag{
		Name:    "upper",
		Aliases: []string{"u"},
		Usage:   "upper bound of the range",
		EnvVars: []string{"LAZYRANGE_UPPER"},
	}

	setupLogger := func(_ *cli.Context) error {
		logging.Setup(verbose)

		return nil
	}

	rangeFlags := []cli.Flag{verboseFlag, configFlag, outputFlag, lowerFlag, upperFlag}

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}

	return &cli.App{
		Name:                   "lazyrange",
		Usage:                  "numeric ranges and lazy sequence transforms",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		EnableBashCompletion:   true,
		Flags: []cli.Flag{
			verboseFlag,
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:  "collect",
				Usage: "print the integers of a range, optionally transformed",
				Flags: append(rangeFlags,
					&cli.StringFlag{
						Name:    "map",
						Aliases: []string{"m"},
						Usage:   "comma separated transforms, any of " + strings.Join(transform.Names(), ", "),
						EnvVars: []string{"LAZYRANGE_MAP"},
					},
					&cli.IntFlag{
						Name:    "take",
						Aliases: []string{"t"},
						Usage:   "stop after this many values (0 for all)",
						EnvVars: []string{"LAZYRANGE_TAKE"},
					},
				),
				Before: setupLogger,
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx)
					if err != nil {
						return err
					}

					return errors.Wrapf(collect(ctx, cCtx.App.Writer, cfg), "failed to collect range")
				},
			},
			{
				Name:      "has",
				Usage:     "test values for membership in a range",
				ArgsUsage: "VALUE...",
				Flags:     rangeFlags,
				Before:    setupLogger,
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx)
					if err != nil {
						return err
					}

					return errors.Wrapf(has(cCtx.App.Writer, cfg, cCtx.Args().Slice()), "failed to test membership")
				},
			},
			{
				Name:   "show",
				Usage:  "describe a range",
				Flags:  rangeFlags,
				Before: setupLogger,
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx)
					if err != nil {
						return err
					}

					return errors.Wrapf(show(cCtx.App.Writer, cfg), "failed to show range")
				},
			},
			{
				Name:      "find",
				Usage:     "print the positions at which a value occurs among the arguments",
				ArgsUsage: "ITEM...",
				Flags: []cli.Flag{
					verboseFlag,
					outputFlag,
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"x"},
						Usage:    "value to search for",
						Required: true,
					},
				},
				Before: setupLogger,
				Action: func(cCtx *cli.Context) error {
					output := config.OutputType(cCtx.String("output"))
					if output == config.OutputTypeUndefined {
						output = config.OutputTypeText
					}

					return errors.Wrapf(find(cCtx.App.Writer, output, cCtx.String("value"), cCtx.Args().Slice()),
						"failed to find value")
				},
			},
			{
				Name:  "counter",
				Usage: "draw from the unique integer counter and print how many were handed out",
				Flags: []cli.Flag{
					verboseFlag,
					outputFlag,
					&cli.IntFlag{
						Name:  "times",
						Usage: "number of draws",
						Value: 4,
					},
				},
				Before: setupLogger,
				Action: func(cCtx *cli.Context) error {
					output := config.OutputType(cCtx.String("output"))
					if output == config.OutputTypeUndefined {
						output = config.OutputTypeText
					}

					return errors.Wrapf(counter(cCtx.App.Writer, output, cCtx.Int("times")), "failed to count")
				},
			},
		},
	}
}

// loadConfig layers the config file, then flags and environment, and
// validates the result.
func loadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(cCtx.String("config"))
	if err != nil {
		return cfg, err
	}

	if cCtx.IsSet("lower") {
		cfg.Lower = cCtx.Float64("lower")
	}
	if cCtx.IsSet("upper") {
		cfg.Upper = cCtx.Float64("upper")
	}
	if cCtx.IsSet("output") {
		cfg.Output = config.OutputType(cCtx.String("output"))
	}
	if cCtx.IsSet("map") {
		cfg.Map = cCtx.String("map")
	}
	if cCtx.IsSet("take") {
		cfg.Take = cCtx.Int("take")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	slog.Debug("Using config", "lower", cfg.Lower, "upper", cfg.Upper, "map", cfg.Map, "take", cfg.Take, "output", cfg.Output)

	return cfg, nil
}

func collect(ctx context.Context, w io.Writer, cfg config.Config) error {
	fn, err := cfg.Transform()
	if err != nil {
		return err
	}

	r := numrange.New(cfg.Lower, cfg.Upper)
	var src seq.Producer[int64] = seq.Map[int64, int64](r, fn)
	if cfg.Take > 0 {
		src = seq.Take(src, cfg.Take)
	} else if r.Len() < 0 {
		slog.Warn("Range is unbounded, interrupt to stop", "range", r.String())
	}

	values, err := seq.CollectContext(ctx, src)
	if err != nil {
		return errors.Wrapf(err, "interrupted after %s values", humanize.Comma(int64(len(values))))
	}

	slog.Debug("Collected", "range", r.String(), "count", humanize.Comma(int64(len(values))))

	return render.Render(cfg.Output, w, render.Values[int64](values))
}

func has(w io.Writer, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("no values to test")
	}

	r := numrange.New(cfg.Lower, cfg.Upper)
	out := make(render.Memberships, 0, len(args))
	for _, arg := range args {
		out = append(out, render.Membership{Value: arg, Member: r.Contains(parseArg(arg))})
	}

	return render.Render(cfg.Output, w, out)
}

// parseArg turns a command line argument into a float64 when it spells a
// number and leaves it as a string otherwise, so that non-numeric input
// reaches Contains as a non-number.
func parseArg(arg string) any {
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return v
	}

	return arg
}

func show(w io.Writer, cfg config.Config) error {
	r := numrange.New(cfg.Lower, cfg.Upper)

	return render.Render(cfg.Output, w, render.Summary{
		Range: r.String(),
		Len:   r.Len(),
		Empty: r.IsEmpty(),
	})
}

func find(w io.Writer, output config.OutputType, value string, items []string) error {
	indexes := seq.Collect(seq.IndexesOf(seq.Of(items...), value))

	slog.Debug("Searched", "value", value, "items", len(items), "matches", len(indexes))

	return render.Render(output, w, render.Values[int](indexes))
}

func counter(w io.Writer, output config.OutputType, times int) error {
	if times < 0 {
		return errors.Errorf("times must not be negative, got %d", times)
	}

	c := seq.NewCounter()
	for range times {
		c.Next()
	}

	return render.Render(output, w, render.Count{Count: c.Count()})
}
