// Package typesize reports the byte width of the fundamental C scalar types
// as seen by the toolchain that built the binary.
package typesize

import (
	"fmt"
	"io"
	"strings"
)

// Sizes holds the host widths in bytes.
type Sizes struct {
	Char     uintptr
	Short    uintptr
	Int      uintptr
	Long     uintptr
	LongLong uintptr
	Float    uintptr
	Double   uintptr
	Bool     uintptr
	Pointer  uintptr
}

// Type is one reported row.
type Type struct {
	Name string // C spelling, e.g. "long long"
	Size uintptr
}

// Label is the upper-case name used in the report.
func (t Type) Label() string { return strings.ToUpper(t.Name) }

// Host returns the widths fixed at build time.
func Host() Sizes { return toolchainSizes() }

// Source says which compiler answered the size queries.
func Source() string { return source }

// Fundamental lists the reported types in report order.
func (s Sizes) Fundamental() []Type {
	return []Type{
		{Name: "char", Size: s.Char},
		{Name: "int", Size: s.Int},
		{Name: "float", Size: s.Float},
		{Name: "long", Size: s.Long},
		{Name: "short", Size: s.Short},
		{Name: "double", Size: s.Double},
		{Name: "bool", Size: s.Bool},
		{Name: "long long", Size: s.LongLong},
	}
}

// Fundamental is Host().Fundamental().
func Fundamental() []Type { return Host().Fundamental() }

// Line formats one report line.
func Line(t Type) string {
	return fmt.Sprintf("Size of %-9s: %d bytes", t.Label(), t.Size)
}

// Write prints the host report.
func Write(w io.Writer) error {
	for _, t := range Fundamental() {
		if _, err := fmt.Fprintln(w, Line(t)); err != nil {
			return fmt.Errorf("write %s: %w", t.Name, err)
		}
	}
	return nil
}
