// Package temperature produces Fahrenheit to Celsius conversion tables.
//
// Two policies share one routine: a floating-point table walked from the
// upper bound down, and an integer table walked from the lower bound up
// whose conversion truncates like integer division does.
package temperature

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strings"
)

// Policy selects iteration direction and arithmetic.
type Policy int

const (
	// FloatDescending walks Upper..Lower and converts with 5.0/9.0*(f-32).
	FloatDescending Policy = iota
	// IntAscending walks Lower..Upper and converts with 5*(f-32)/9.
	IntAscending
)

// Default bounds of the classic table.
const (
	DefaultLower = 0
	DefaultUpper = 300
	DefaultStep  = 20
)

// Banner is printed ahead of the table by the standalone converter.
const Banner = "Running while loop"

var (
	ErrInvalidStep   = errors.New("step must be positive")
	ErrInvertedRange = errors.New("lower bound is above upper bound")
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrRangeTooLarge = errors.New("range bounds too large")
)

// maxExact is the largest magnitude a float64 step still moves exactly.
const maxExact = 1 << 53

func (p Policy) String() string {
	switch p {
	case FloatDescending:
		return "float"
	case IntAscending:
		return "int"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "float"/"descending" and "int"/"ascending".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float", "descending", "desc":
		return FloatDescending, nil
	case "int", "integer", "ascending", "asc":
		return IntAscending, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Range bounds a table. Both ends are inclusive.
type Range struct {
	Lower int
	Upper int
	Step  int
}

// DefaultRange is 0..300 in steps of 20.
func DefaultRange() Range {
	return Range{Lower: DefaultLower, Upper: DefaultUpper, Step: DefaultStep}
}

// Validate reports ranges whose walk would not terminate or is empty.
func (r Range) Validate() error {
	if r.Step <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, r.Step)
	}
	if r.Lower > r.Upper {
		return fmt.Errorf("%w: %d > %d", ErrInvertedRange, r.Lower, r.Upper)
	}
	if r.Lower < -maxExact || r.Upper > maxExact || r.Upper > math.MaxInt-r.Step {
		return fmt.Errorf("%w: %d..%d step %d", ErrRangeTooLarge, r.Lower, r.Upper, r.Step)
	}
	return nil
}

// Pair is one row of the table, Fahrenheit first.
type Pair struct {
	Fahr    float64
	Celsius float64
}

// Pairs yields the rows of the table lazily. A range that fails Validate
// yields nothing.
func Pairs(p Policy, r Range) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		if r.Validate() != nil {
			return
		}
		if p == IntAscending {
			for f := r.Lower; f <= r.Upper; f += r.Step {
				if !yield(Pair{Fahr: float64(f), Celsius: float64(5 * (f - 32) / 9)}) {
					return
				}
			}
			return
		}
		lower, step := float64(r.Lower), float64(r.Step)
		for f := float64(r.Upper); f >= lower; f -= step {
			if !yield(Pair{Fahr: f, Celsius: 5.0 / 9.0 * (f - 32)}) {
				return
			}
		}
	}
}

// Format renders one row the way the policy prints it.
func Format(p Policy, pair Pair) string {
	if p == IntAscending {
		return fmt.Sprintf("%3d\t%6d", int(pair.Fahr), int(pair.Celsius))
	}
	return fmt.Sprintf("%3.0f\t%6.1f", pair.Fahr, pair.Celsius)
}

// Lines renders the whole table.
func Lines(p Policy, r Range) []string {
	var out []string
	for pair := range Pairs(p, r) {
		out = append(out, Format(p, pair))
	}
	return out
}

// Write prints one line per row.
func Write(w io.Writer, p Policy, r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for pair := range Pairs(p, r) {
		if _, err := fmt.Fprintln(w, Format(p, pair)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}
