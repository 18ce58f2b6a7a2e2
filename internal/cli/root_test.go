package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlagSet_HelpPrintsNothing(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		fs := RootFlagSet()
		var buf bytes.Buffer
		fs.SetOutput(&buf)

		err := fs.Parse([]string{arg})
		assert.True(t, errors.Is(err, pflag.ErrHelp), arg)
		assert.Empty(t, buf.String(), arg)
	}
}

func TestRootFlagSet_StopsAtSubcommand(t *testing.T) {
	fs := RootFlagSet()
	require.NoError(t, fs.Parse([]string{"--theme", "neon", "temp", "--policy", "int"}))

	theme, err := fs.GetString("theme")
	require.NoError(t, err)
	assert.Equal(t, "neon", theme)
	assert.Equal(t, []string{"temp", "--policy", "int"}, fs.Args())
}

func TestRootFlagSet_BadFlagStillReported(t *testing.T) {
	fs := RootFlagSet()
	var buf bytes.Buffer
	fs.SetOutput(&buf)

	err := fs.Parse([]string{"--nope"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, pflag.ErrHelp))
}
