package cli

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/scalars/internal/logger"
)

// RootFlagSet returns the flags that apply to every subcommand. Parsing
// stops at the first positional argument, which names the subcommand.
// Usage is silenced: callers print PrintHelp on pflag.ErrHelp themselves.
func RootFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("scalars", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.SetInterspersed(false)
	fs.Usage = func() {}
	fs.String("theme", "classic", "output theme: classic, neon or mono")
	fs.Bool("no-color", false, "disable colored output")
	fs.String("log-level", logger.WarnLevel, "log level on stderr: debug, info, warn or error")
	fs.String("config", "", "config file (default ./scalars.yaml or ~/.config/scalars/scalars.yaml)")
	return fs
}
