// Package logging configures the process-wide slog logger of the command line
// tool.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

// Level returns the log level for the verbosity flag.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New builds a logger writing colourised records to w. Colour is disabled when
// w is not a terminal.
func New(w *os.File, verbose bool, extra ...slog.Handler) *slog.Logger {
	handlers := append([]slog.Handler{
		tint.NewHandler(w, &tint.Options{
			Level:      Level(verbose),
			TimeFormat: time.TimeOnly,
			NoColor:    !isatty.IsTerminal(w.Fd()),
		}),
	}, extra...)

	return slog.New(slogmulti.Fanout(handlers...))
}

// Setup installs a stderr logger as the slog default.
func Setup(verbose bool) {
	slog.SetDefault(New(os.Stderr, verbose))
}
