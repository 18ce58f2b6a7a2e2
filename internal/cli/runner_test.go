package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/scalars/internal/config"
	"github.com/idilsaglam/scalars/internal/logger"
	"github.com/idilsaglam/scalars/internal/temperature"
	"github.com/idilsaglam/scalars/internal/ui"
)

func init() {
	ui.SetColorForcing(false, true)
}

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	code := Run(args, Options{Settings: config.Defaults(), Out: &out})
	return code, out.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRun_Help(t *testing.T) {
	code, out := run(t, "help")
	assert.Equal(t, 0, code)
	for _, name := range []string{"temp", "sizes", "models", "pointers", "browse"} {
		assert.Contains(t, out, name)
	}
}

func TestRun_NoArgs(t *testing.T) {
	code, out := run(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Usage:")
}

func TestRun_TempDefault(t *testing.T) {
	code, out := run(t, "temp")
	require.Equal(t, 0, code)
	assert.Equal(t, temperature.Lines(temperature.FloatDescending, temperature.DefaultRange()), lines(out))
}

func TestRun_TempInt(t *testing.T) {
	code, out := run(t, "temp", "--policy", "int", "--banner")
	require.Equal(t, 0, code)

	ls := lines(out)
	require.Len(t, ls, 17)
	assert.Equal(t, temperature.Banner, ls[0])
	assert.Equal(t, "  0\t   -17", ls[1])
	assert.Equal(t, "300\t   148", ls[16])
}

func TestRun_TempUsesSettings(t *testing.T) {
	s := config.Defaults()
	s.Temperature.Range.Step = 100

	var out bytes.Buffer
	code := Run([]string{"temp"}, Options{Settings: s, Out: &out})
	require.Equal(t, 0, code)
	assert.Len(t, lines(out.String()), 4) // 300, 200, 100, 0
}

func TestRun_TempUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"temp", "--step", "0"},
		{"temp", "--lower", "500"},
		{"temp", "--policy", "kelvin"},
		{"temp", "--nope"},
		{"temp", "extra"},
		{"temp", "--policy", "int", "--lower", "9223372036854775707", "--upper", "9223372036854775807"},
		{"temp", "--lower", "4611686018427387804", "--upper", "4611686018427387904"},
	} {
		code, out := run(t, args...)
		assert.Equal(t, 2, code, "%v", args)
		assert.Empty(t, out, "%v", args)
	}
}

func TestRun_BadRangeOnlyFailsTemperature(t *testing.T) {
	s := config.Defaults()
	s.Temperature.Range.Step = 0

	for _, cmd := range []string{"sizes", "models", "pointers"} {
		var out bytes.Buffer
		code := Run([]string{cmd}, Options{Settings: s, Out: &out})
		assert.Equal(t, 0, code, cmd)
		assert.NotEmpty(t, out.String(), cmd)
	}

	for _, cmd := range []string{"temp", "browse"} {
		var out bytes.Buffer
		code := Run([]string{cmd}, Options{Settings: s, Out: &out})
		assert.Equal(t, 2, code, cmd)
		assert.Empty(t, out.String(), cmd)
	}
}

func TestRun_Sizes(t *testing.T) {
	code, out := run(t, "sizes")
	require.Equal(t, 0, code)
	ls := lines(out)
	require.Len(t, ls, 8)
	assert.True(t, strings.HasPrefix(ls[7], "Size of LONG LONG: "))

	code, out = run(t, "sizes", "--table")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "data model:")
}

func TestRun_Models(t *testing.T) {
	code, out := run(t, "models")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "LLP64")
	assert.Contains(t, out, "long double")
}

func TestRun_Pointers(t *testing.T) {
	var out, logs bytes.Buffer
	code := Run([]string{"pointers"}, Options{
		Settings: config.Defaults(),
		Out:      &out,
		Log:      logger.New(&logs, logger.DebugLevel),
	})
	require.Equal(t, 0, code)

	ls := lines(out.String())
	require.Len(t, ls, 5)
	assert.Equal(t, "21", ls[0])
	assert.Equal(t, ls[1], ls[2])
	assert.Contains(t, logs.String(), "increment result is discarded")
}

func TestRun_ExtraArgs(t *testing.T) {
	for _, cmd := range []string{"models", "pointers", "browse"} {
		code, _ := run(t, cmd, "x")
		assert.Equal(t, 2, code, cmd)
	}
}

func TestRun_Unknown(t *testing.T) {
	code, out := run(t, "wallet")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
}
