// Package report renders an exercise by name, as plain lines or as themed
// tables. The CLI and the browser both print through it.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/idilsaglam/scalars/internal/model"
	"github.com/idilsaglam/scalars/internal/pointers"
	"github.com/idilsaglam/scalars/internal/temperature"
	"github.com/idilsaglam/scalars/internal/typesize"
	"github.com/idilsaglam/scalars/internal/ui"
)

var ErrUnknownExercise = errors.New("unknown exercise")

const barWidth = 24

// Options tune how an exercise is rendered.
type Options struct {
	Policy temperature.Policy
	Range  temperature.Range
	Banner bool // print the loop banner ahead of the temperature table
	Table  bool // themed table instead of plain lines
}

// DefaultOptions renders exactly what the standalone programs print.
func DefaultOptions() Options {
	return Options{Policy: temperature.FloatDescending, Range: temperature.DefaultRange()}
}

// Write renders exercise name to w.
func Write(w io.Writer, name string, opt Options) error {
	switch name {
	case model.Temp:
		return writeTemp(w, opt)
	case model.Sizes:
		return writeSizes(w, opt)
	case model.Models:
		return writeModels(w)
	case model.Pointers:
		return pointers.Run(w)
	}
	return fmt.Errorf("%w: %q", ErrUnknownExercise, name)
}

// String is Write into a string.
func String(name string, opt Options) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, name, opt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeTemp(w io.Writer, opt Options) error {
	if opt.Banner {
		if _, err := fmt.Fprintln(w, temperature.Banner); err != nil {
			return err
		}
	}
	if !opt.Table {
		return temperature.Write(w, opt.Policy, opt.Range)
	}
	if err := opt.Range.Validate(); err != nil {
		return err
	}

	scale := 0.0
	for p := range temperature.Pairs(opt.Policy, opt.Range) {
		scale = math.Max(scale, math.Abs(p.Celsius))
	}
	th := ui.Current()
	var rows [][]string
	for p := range temperature.Pairs(opt.Policy, opt.Range) {
		style := th.Hot
		if p.Celsius < 0 {
			style = th.Cold
		}
		rows = append(rows, []string{
			formatNumber(opt.Policy, p.Fahr, 0),
			formatNumber(opt.Policy, p.Celsius, 1),
			ui.C(style, ui.Bar(math.Abs(p.Celsius), scale, barWidth)),
		})
	}
	ui.Table(w, []string{"°F", "°C", ""}, rows)
	return nil
}

func formatNumber(p temperature.Policy, v float64, prec int) string {
	if p == temperature.IntAscending {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func writeSizes(w io.Writer, opt Options) error {
	if !opt.Table {
		return typesize.Write(w)
	}
	host := typesize.Host()
	var rows [][]string
	for _, t := range host.Fundamental() {
		rows = append(rows, []string{t.Name, strconv.FormatUint(uint64(t.Size), 10)})
	}
	rows = append(rows, []string{"void *", strconv.FormatUint(uint64(host.Pointer), 10)})
	ui.Table(w, []string{"type", "bytes"}, rows)

	note := "data model: unknown"
	if m, ok := typesize.Detect(host); ok {
		note = "data model: " + m.Name
	}
	_, err := fmt.Fprintln(w, ui.C(ui.Current().Muted, note+" (sizes from the "+typesize.Source()+")"))
	return err
}

func writeModels(w io.Writer) error {
	models := typesize.Models()
	headers := append([]string{"model"}, typesize.Columns...)
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, m.Row())
	}
	ui.Table(w, headers, rows)

	for _, m := range models {
		line := fmt.Sprintf("%-7s %s", m.Name, m.WhereSeen)
		if _, err := fmt.Fprintln(w, ui.C(ui.Current().Muted, line)); err != nil {
			return err
		}
	}
	return nil
}
