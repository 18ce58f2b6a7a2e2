package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/scalars/internal/config"
	"github.com/idilsaglam/scalars/internal/logger"
	"github.com/idilsaglam/scalars/internal/model"
	"github.com/idilsaglam/scalars/internal/pointers"
	"github.com/idilsaglam/scalars/internal/report"
	"github.com/idilsaglam/scalars/internal/temperature"
	"github.com/idilsaglam/scalars/internal/tui"
	"github.com/idilsaglam/scalars/internal/ui"
)

// Options carry what the root command resolved.
type Options struct {
	Settings config.Settings
	Log      *logger.Logger
	Out      io.Writer // defaults to stdout
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) log() *logger.Logger {
	if o.Log == nil {
		return logger.Nop()
	}
	return o.Log
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp(opt.out())
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.out())
		return 0

	case model.Temp:
		return doTemp(a, opt)

	case model.Sizes:
		return doSizes(a, opt)

	case model.Models, model.Pointers:
		if len(a) != 0 {
			ui.Fail("usage: scalars " + cmd)
			return 2
		}
		if cmd == model.Pointers {
			opt.log().Debugw("increment result is discarded by the caller", "func", "Increment", "arg", pointers.Age)
		}
		return render(cmd, report.DefaultOptions(), opt)

	case "browse":
		if len(a) != 0 {
			ui.Fail("usage: scalars browse")
			return 2
		}
		return doBrowse(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp(os.Stderr)
	return 2
}

// PrintHelp lists subcommands from the exercise catalog.
func PrintHelp(w io.Writer) {
	var b strings.Builder
	for _, e := range model.Catalog() {
		fmt.Fprintf(&b, "  %-10s %s\n", e.Name, e.Summary)
	}
	fmt.Fprintf(w, `scalars - scalar diagnostics and conversion exercises

Usage:
  scalars [--theme classic|neon|mono] [--no-color] [--config FILE] [--log-level LEVEL] <subcommand> [args]

Subcommands:
%s  browse     Interactive browser over all exercises
  help       Show this help

Flags for temp:
  --policy float|int   float walks 300..0 in float, int walks 0..300 truncating
  --lower N --upper N --step N
  --banner             print the loop banner first
  --table              render as a table

Flags for sizes:
  --table              render as a table with the detected data model

Examples:
  scalars temp
  scalars temp --policy int --step 10
  scalars sizes --table
  scalars models
`, b.String())
}

// -------------- subcommand impls ----------------

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// parse returns -1 to continue, or the exit code to return.
func parse(fs *pflag.FlagSet, args []string) int {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		ui.Fail(fs.Name() + ": " + err.Error())
		return 2
	}
	if fs.NArg() != 0 {
		ui.Fail(fmt.Sprintf("%s: unexpected arguments: %s", fs.Name(), strings.Join(fs.Args(), " ")))
		return 2
	}
	return -1
}

func doTemp(args []string, opt Options) int {
	t := opt.Settings.Temperature
	fs := newFlagSet(model.Temp)
	policy := fs.String("policy", t.Policy.String(), "float (descending) or int (ascending)")
	lower := fs.Int("lower", t.Range.Lower, "lower bound in °F")
	upper := fs.Int("upper", t.Range.Upper, "upper bound in °F")
	step := fs.Int("step", t.Range.Step, "step in °F")
	banner := fs.Bool("banner", false, "print the loop banner first")
	table := fs.Bool("table", false, "render as a table")
	if code := parse(fs, args); code >= 0 {
		return code
	}

	p, err := temperature.ParsePolicy(*policy)
	if err != nil {
		ui.Fail("temp: " + err.Error())
		return 2
	}
	ro := report.Options{
		Policy: p,
		Range:  temperature.Range{Lower: *lower, Upper: *upper, Step: *step},
		Banner: *banner,
		Table:  *table,
	}
	if err := ro.Range.Validate(); err != nil {
		ui.Fail("temp: " + err.Error())
		return 2
	}
	opt.log().Debugw("temperature table", "policy", p.String(),
		"lower", ro.Range.Lower, "upper", ro.Range.Upper, "step", ro.Range.Step)
	return render(model.Temp, ro, opt)
}

func doSizes(args []string, opt Options) int {
	fs := newFlagSet(model.Sizes)
	table := fs.Bool("table", false, "render as a table")
	if code := parse(fs, args); code >= 0 {
		return code
	}
	ro := report.DefaultOptions()
	ro.Table = *table
	return render(model.Sizes, ro, opt)
}

func doBrowse(opt Options) int {
	t := opt.Settings.Temperature
	if err := t.Range.Validate(); err != nil {
		ui.Fail("browse: temperature: " + err.Error())
		return 2
	}
	if err := tui.Run(tui.Options{Policy: t.Policy, Range: t.Range}); err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	return 0
}

func render(name string, ro report.Options, opt Options) int {
	opt.log().Debugw("render exercise", "exercise", name, "table", ro.Table)
	if err := report.Write(opt.out(), name, ro); err != nil {
		ui.Fail(name + ": " + err.Error())
		return 1
	}
	return 0
}
