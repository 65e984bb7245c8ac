package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/tutorbook/internal/flagx"
)

// parseFlags overrides cfg with the flags present in args. Flags belonging to
// other parsers (such as -c) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-u", "-r", "-k", "-l", "-b"})

	fs := flag.NewFlagSet("tutorbook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "user records file")
	fs.StringVar(&cfg.ReservationsFile, "r", cfg.ReservationsFile, "reservation records file")
	fs.StringVar(&cfg.CatalogFile, "k", cfg.CatalogFile, "catalog file (YAML)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend: slog, zap")

	return fs.Parse(args)
}
