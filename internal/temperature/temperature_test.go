package temperature

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairs_FloatDescending(t *testing.T) {
	pairs := slices.Collect(Pairs(FloatDescending, DefaultRange()))
	require.Len(t, pairs, 16)

	first := pairs[0]
	assert.Equal(t, 300.0, first.Fahr)
	assert.Equal(t, " 148.9", strings.Split(Format(FloatDescending, first), "\t")[1])

	last := pairs[len(pairs)-1]
	assert.GreaterOrEqual(t, last.Fahr, 0.0)
	assert.Less(t, last.Fahr, 20.0)
	assert.Equal(t, "  0\t -17.8", Format(FloatDescending, last))

	for i := 1; i < len(pairs); i++ {
		assert.Equal(t, pairs[i-1].Fahr-20, pairs[i].Fahr)
	}
}

func TestPairs_IntAscending(t *testing.T) {
	pairs := slices.Collect(Pairs(IntAscending, DefaultRange()))
	require.Len(t, pairs, 16)

	for i, p := range pairs {
		f := i * 20
		assert.Equal(t, float64(f), p.Fahr)
		assert.Equal(t, float64(5*(f-32)/9), p.Celsius, "fahr %d", f)
	}
	// truncation toward zero, not flooring
	assert.Equal(t, -6.0, pairs[1].Celsius)
	assert.Equal(t, "300\t   148", Format(IntAscending, pairs[15]))
}

func TestPairs_StepLargerThanRange(t *testing.T) {
	r := Range{Lower: 0, Upper: 10, Step: 50}

	desc := slices.Collect(Pairs(FloatDescending, r))
	require.Len(t, desc, 1)
	assert.Equal(t, 10.0, desc[0].Fahr)

	asc := slices.Collect(Pairs(IntAscending, r))
	require.Len(t, asc, 1)
	assert.Equal(t, 0.0, asc[0].Fahr)
}

func TestPairs_NonPositiveStepYieldsNothing(t *testing.T) {
	for _, step := range []int{0, -20} {
		r := Range{Lower: 0, Upper: 300, Step: step}
		assert.Empty(t, slices.Collect(Pairs(FloatDescending, r)))
		assert.Empty(t, slices.Collect(Pairs(IntAscending, r)))
	}
}

func TestPairs_StopsEarly(t *testing.T) {
	n := 0
	for range Pairs(FloatDescending, DefaultRange()) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FloatDescending, DefaultRange()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "300\t 148.9", lines[0])
	assert.Equal(t, Lines(FloatDescending, DefaultRange()), lines)
}

func TestWrite_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, IntAscending, DefaultRange()))
	require.NoError(t, Write(&b, IntAscending, DefaultRange()))
	assert.Equal(t, a.String(), b.String())
}

func TestWrite_InvalidRange(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, FloatDescending, Range{Lower: 0, Upper: 300, Step: 0})
	assert.True(t, errors.Is(err, ErrInvalidStep))

	err = Write(&buf, IntAscending, Range{Lower: 400, Upper: 300, Step: 20})
	assert.True(t, errors.Is(err, ErrInvertedRange))

	assert.Empty(t, buf.String())
}

func TestValidate_RangeTooLarge(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		rng    Range
	}{
		{"int upper at MaxInt", IntAscending, Range{Lower: math.MaxInt - 100, Upper: math.MaxInt, Step: 20}},
		{"int upper within one step of MaxInt", IntAscending, Range{Lower: 0, Upper: math.MaxInt - 10, Step: 20}},
		{"float bounds beyond exact integers", FloatDescending, Range{Lower: 1<<62 - 100, Upper: 1 << 62, Step: 20}},
		{"float lower far negative", FloatDescending, Range{Lower: -(1<<53 + 1), Upper: 0, Step: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.rng.Validate(), ErrRangeTooLarge))
			assert.Empty(t, slices.Collect(Pairs(tt.policy, tt.rng)))

			var buf bytes.Buffer
			assert.True(t, errors.Is(Write(&buf, tt.policy, tt.rng), ErrRangeTooLarge))
			assert.Empty(t, buf.String())
		})
	}
}

func TestValidate_LargestExactRange(t *testing.T) {
	r := Range{Lower: 1<<53 - 40, Upper: 1 << 53, Step: 20}
	require.NoError(t, r.Validate())
	assert.Len(t, slices.Collect(Pairs(FloatDescending, r)), 3)
	assert.Len(t, slices.Collect(Pairs(IntAscending, r)), 3)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, FloatDescending, DefaultRange())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write row")
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"", FloatDescending},
		{"float", FloatDescending},
		{"Descending", FloatDescending},
		{"int", IntAscending},
		{" ascending ", IntAscending},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePolicy("kelvin")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "float", FloatDescending.String())
	assert.Equal(t, "int", IntAscending.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}
