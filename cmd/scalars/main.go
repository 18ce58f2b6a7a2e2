package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/scalars/internal/cli"
	"github.com/idilsaglam/scalars/internal/config"
	"github.com/idilsaglam/scalars/internal/logger"
	"github.com/idilsaglam/scalars/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand). Everything after the first
	// positional argument belongs to the subcommand.
	fs := cli.RootFlagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.PrintHelp(os.Stdout)
			os.Exit(0)
		}
		ui.Fail(err.Error())
		os.Exit(2)
	}
	configFile, _ := fs.GetString("config")

	settings, err := config.Load(config.Options{ConfigFile: configFile, Flags: fs})
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}

	log := logger.Get(settings.LogLevel)
	defer func() { _ = log.Sync() }()
	if settings.ConfigFile != "" {
		log.Infow("using config file", "path", settings.ConfigFile)
	}

	ui.SetColorForcing(false, settings.NoColor)
	ui.SetTheme(settings.Theme)

	// Hand the remaining args to the CLI runner.
	args := fs.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{Settings: settings, Log: log})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
